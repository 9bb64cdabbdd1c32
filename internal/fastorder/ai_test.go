package fastorder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const completionBody = `{"choices":[{"message":{"tool_calls":[{"function":{"arguments":"{\"items\":[{\"sku\":\"PAS-001\",\"quantity\":5}]}"}}]}}]}`

// newTestGateway simule la passerelle IA : les requêtes dont le texte
// contient "lent" bloquent jusqu'à la fermeture de release, et signalent
// leur arrivée sur started.
func newTestGateway(t *testing.T, started chan<- struct{}, release <-chan struct{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Messages []struct {
				Content string `json:"content"`
			} `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("payload illisible : %v", err)
		}

		if len(payload.Messages) == 2 && strings.Contains(payload.Messages[1].Content, "lent") {
			started <- struct{}{}
			<-release
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, completionBody)
	}))
}

func newTestClient(t *testing.T, gatewayURL string) *AIClient {
	t.Helper()
	t.Setenv("AI_GATEWAY_URL", gatewayURL)
	t.Setenv("AI_GATEWAY_KEY", "cle-de-test")
	return NewAIClient()
}

// Une analyse en vol ne doit jamais être invalidée par celle d'une
// autre session : les générations sont comptées par session.
func TestParseSessionsIndependantes(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gateway := newTestGateway(t, started, release)
	defer gateway.Close()

	client := newTestClient(t, gateway.URL)

	resultA := make(chan error, 1)
	go func() {
		_, err := client.Parse(context.Background(), "session-a", "PAS-001 5 lent")
		resultA <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("la requête de la session A n'a jamais atteint la passerelle")
	}

	// La session B analyse pendant que A est en vol
	items, err := client.Parse(context.Background(), "session-b", "PAS-001 5")
	if err != nil {
		t.Fatalf("Parse(session-b) : %v", err)
	}
	if len(items) != 1 || items[0].SKU != "PAS-001" {
		t.Errorf("items = %+v, attendu [PAS-001 x5]", items)
	}

	close(release)

	if err := <-resultA; err != nil {
		t.Errorf("la réponse de la session A a été écartée : %v", err)
	}
}

// Au sein d'une même session, une requête plus récente écarte la
// réponse de la précédente.
func TestParseDerniereRequeteGagne(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	gateway := newTestGateway(t, started, release)
	defer gateway.Close()

	client := newTestClient(t, gateway.URL)

	resultOld := make(chan error, 1)
	go func() {
		_, err := client.Parse(context.Background(), "session-c", "PAS-001 5 lent")
		resultOld <- err
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("la première requête n'a jamais atteint la passerelle")
	}

	if _, err := client.Parse(context.Background(), "session-c", "PAS-001 5"); err != nil {
		t.Fatalf("Parse(requête récente) : %v", err)
	}

	close(release)

	if err := <-resultOld; !errors.Is(err, ErrStaleParse) {
		t.Errorf("err = %v, attendu ErrStaleParse pour la requête dépassée", err)
	}
}
