package controller

import (
	"crypto/md5"
	"encoding/binary"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingolift_backend/internals/features/vocab/words/model"
	"lingolift_backend/internals/features/vocab/words/service"
	helper "lingolift_backend/internals/helpers"
)

type WordController struct {
	DB *gorm.DB
	AI *service.AIDefinitionClient
}

func NewWordController(db *gorm.DB, ai *service.AIDefinitionClient) *WordController {
	return &WordController{DB: db, AI: ai}
}

// GET /api/words/search?q=
func (ctrl *WordController) Search(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"found": false,
			"error": "No search query provided",
		})
	}

	var word model.WordModel
	err := ctrl.DB.Where("LOWER(word_text) = LOWER(?)", q).First(&word).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"found": false,
				"error": "Word not found in database",
			})
		}
		log.Println("[ERROR] word search failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}

	return c.JSON(fiber.Map{
		"found": true,
		"word":  word,
	})
}

// GET /api/words/random
// Same word for everyone for a whole day: the pick is seeded from the
// date, not from the request.
func (ctrl *WordController) RandomWord(c *fiber.Ctx) error {
	var words []model.WordModel
	if err := ctrl.DB.Order("id ASC").Find(&words).Error; err != nil {
		log.Println("[ERROR] failed to load words:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load words")
	}
	if len(words) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "No words available")
	}

	today := time.Now().Format("2006-01-02")
	sum := md5.Sum([]byte(today))
	seed := binary.BigEndian.Uint64(sum[:8])
	word := words[seed%uint64(len(words))]

	return c.JSON(word)
}

// GET /api/ai-definition?word=
func (ctrl *WordController) AIDefinition(c *fiber.Ctx) error {
	if _, err := helper.GetUserIDFromToken(c); err != nil {
		return err
	}

	word := strings.TrimSpace(c.Query("word"))
	if word == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Word parameter is required")
	}
	lookup := strings.ToLower(word)

	// cache hit: skip the network call entirely
	var cached model.WordAIDefinition
	if err := ctrl.DB.Where("word_text = ?", lookup).First(&cached).Error; err == nil {
		return c.JSON(fiber.Map{"definition": cached.Definition})
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] definition cache lookup failed:", err)
	}

	if ctrl.AI == nil || !ctrl.AI.Enabled() {
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "AI definition service is not configured")
	}

	definition, raw, err := ctrl.AI.Definition(c.UserContext(), word)
	if err != nil {
		log.Println("[ERROR] ai definition fetch failed:", err)
		return helper.JsonError(c, fiber.StatusBadGateway, "Failed to fetch definition")
	}

	entry := model.WordAIDefinition{
		WordText:   lookup,
		Definition: definition,
		Raw:        raw,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		// a concurrent request may have filled the cache first
		log.Println("[WARN] failed to cache ai definition:", err)
	}

	return c.JSON(fiber.Map{"definition": definition})
}
