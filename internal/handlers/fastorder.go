package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gromarche_back_end/internal/cart"
	"gromarche_back_end/internal/catalog"
	"gromarche_back_end/internal/fastorder"
	"gromarche_back_end/internal/models"
)

var aiClient = fastorder.NewAIClient()

// ParseOrder valide un texte de commande rapide ligne par ligne, sans
// passer par la passerelle IA.
func ParseOrder(c *gin.Context) {
	var input struct {
		Text string `json:"text"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'text' est obligatoire"})
		return
	}

	items := fastorder.ParseText(catalog.Current, input.Text)

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"valid_count": countValid(items),
	})
}

// ParseOrderAI délègue l'extraction à la passerelle IA puis résout les
// SKU contre le catalogue. Un échec distant est retryable et ne
// désactive jamais le parsing manuel.
func ParseOrderAI(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var input struct {
		Text string `json:"text"`
	}

	if err := c.ShouldBindJSON(&input); err != nil || input.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'text' est obligatoire"})
		return
	}

	parsed, err := aiClient.Parse(c.Request.Context(), sessionID, input.Text)
	if err != nil {
		switch {
		case errors.Is(err, fastorder.ErrStaleParse):
			// Une requête plus récente est en vol, cette réponse est écartée
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, fastorder.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": err.Error(), "retry_after": 60})
		case errors.Is(err, fastorder.ErrQuotaExceeded):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "fallback": "manual"})
		}
		return
	}

	items := fastorder.Resolve(catalog.Current, parsed)

	c.JSON(http.StatusOK, gin.H{
		"items":       items,
		"valid_count": countValid(items),
	})
}

// AddParsedToCart ajoute au panier les lignes valides d'une commande
// rapide. Les lignes invalides sont comptées, jamais bloquantes.
func AddParsedToCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var input struct {
		Items []struct {
			SKU      string `json:"sku"`
			Quantity int    `json:"quantity"`
		} `json:"items"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := context.Background()
	items := loadCartItems(ctx, sessionID)

	added, skipped := 0, 0
	for _, line := range input.Items {
		product := catalog.Current.FindProductBySKU(line.SKU)
		if product == nil || line.Quantity < 1 {
			skipped++
			continue
		}
		items, _ = cart.AddItem(items, *product, line.Quantity)
		added++
	}

	if added == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucune ligne valide à ajouter"})
		return
	}

	saveCartItems(ctx, sessionID, items)

	c.JSON(http.StatusOK, gin.H{
		"message": "Lignes valides ajoutées au panier",
		"added":   added,
		"skipped": skipped,
		"totals":  cart.Totals(items),
	})
}

// DownloadOrderTemplate renvoie le modèle CSV de commande rapide.
func DownloadOrderTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="fast-order-template.csv"`)
	c.Data(http.StatusOK, "text/csv", []byte(fastorder.CSVTemplate))
}

func countValid(items []models.ParsedItem) int {
	count := 0
	for _, item := range items {
		if item.Status == models.LineValid {
			count++
		}
	}
	return count
}
