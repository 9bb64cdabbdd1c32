package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/gocql/gocql"
	"github.com/redis/go-redis/v9"
)

// --- Configuration ScyllaDB ---
type ScyllaConfig struct {
	Hosts       []string
	Keyspace    string
	Username    string
	Password    string
	Timeout     time.Duration
	NumConns    int
	Consistency gocql.Consistency
}

// --- Variables Globales ---
var (
	Redis *redis.Client

	scyllaMu      sync.Mutex
	scyllaSession *gocql.Session
)

// ConnectDatabases initialise ScyllaDB (keyspace catalogue) et Redis.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := GetCatalogSession(); err != nil {
		log.Fatalf("❌ Échec initialisation ScyllaDB: %v", err)
	}

	connectRedis(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

// loadScyllaConfig charge la configuration du keyspace catalogue depuis .env
func loadScyllaConfig() ScyllaConfig {
	return ScyllaConfig{
		Hosts:       strings.Split(os.Getenv("SCYLLA_HOSTS"), ","),
		Keyspace:    os.Getenv("SCYLLA_KS_CATALOG_KEYSPACE"),
		Username:    os.Getenv("SCYLLA_KS_CATALOG_ROLE"),
		Password:    os.Getenv("SCYLLA_KS_CATALOG_PASSWORD"),
		Timeout:     5 * time.Second,
		NumConns:    10,
		Consistency: gocql.Quorum,
	}
}

func createScyllaCluster(config ScyllaConfig) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(config.Hosts...)
	cluster.Keyspace = config.Keyspace
	cluster.Consistency = config.Consistency
	cluster.Timeout = config.Timeout
	cluster.NumConns = config.NumConns
	cluster.ReconnectInterval = 1 * time.Second

	if config.Username != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: config.Username,
			Password: config.Password,
		}
	}

	cluster.PoolConfig.HostSelectionPolicy = gocql.TokenAwareHostPolicy(gocql.RoundRobinHostPolicy())

	return cluster
}

// GetCatalogSession retourne la session pour le keyspace catalogue.
// La session est créée à la demande puis réutilisée.
func GetCatalogSession() (*gocql.Session, error) {
	scyllaMu.Lock()
	defer scyllaMu.Unlock()

	if scyllaSession != nil {
		if err := scyllaSession.Query("SELECT now() FROM system.local").Exec(); err == nil {
			return scyllaSession, nil
		}
		// Session invalide, on la recrée
		scyllaSession.Close()
		scyllaSession = nil
	}

	config := loadScyllaConfig()
	if config.Keyspace == "" {
		return nil, fmt.Errorf("SCYLLA_KS_CATALOG_KEYSPACE non configuré")
	}

	session, err := createScyllaCluster(config).CreateSession()
	if err != nil {
		return nil, fmt.Errorf("erreur création session pour %s: %v", config.Keyspace, err)
	}

	scyllaSession = session
	log.Printf("✅ Nouvelle session ScyllaDB pour keyspace '%s'", config.Keyspace)

	return session, nil
}

// CloseScylla ferme la session ScyllaDB
func CloseScylla() {
	scyllaMu.Lock()
	defer scyllaMu.Unlock()

	if scyllaSession != nil {
		scyllaSession.Close()
		scyllaSession = nil
		log.Println("🔌 Session ScyllaDB fermée")
	}
}

func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Échec connexion Redis: %v", err)
	}

	log.Println("✅ Redis connecté sur", addr)
}
