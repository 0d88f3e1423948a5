package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingolift_backend/internals/features/vocab/learning_list/model"
	wordModel "lingolift_backend/internals/features/vocab/words/model"
	helper "lingolift_backend/internals/helpers"
)

type LearningListController struct {
	DB *gorm.DB
}

func NewLearningListController(db *gorm.DB) *LearningListController {
	return &LearningListController{DB: db}
}

// GET|POST /api/learning-list/
func (ctrl *LearningListController) Add(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req struct {
		WordID uint `json:"word_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.WordID == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "word_id is required")
	}

	var word wordModel.WordModel
	if err := ctrl.DB.First(&word, "id = ?", req.WordID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Word not found")
		}
		log.Println("[ERROR] word lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add word")
	}

	var existing model.LearningListModel
	if err := ctrl.DB.Where("user_id = ? AND word_id = ?", userID, req.WordID).First(&existing).Error; err == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Word already in learning list")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Println("[ERROR] learning list lookup failed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add word")
	}

	entry := model.LearningListModel{
		UserID: userID,
		WordID: req.WordID,
		Word:   word,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Println("[ERROR] failed to add to learning list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to add word")
	}

	return helper.JsonCreated(c, "Word added to learning list", fiber.Map{
		"id":   entry.ID,
		"word": entry.Word,
	})
}

// GET /api/learning-list/view/
func (ctrl *LearningListController) View(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var entries []model.LearningListModel
	if err := ctrl.DB.Preload("Word").Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		log.Println("[ERROR] failed to load learning list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load learning list")
	}

	out := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, fiber.Map{
			"id":   e.ID,
			"word": e.Word,
		})
	}
	return c.JSON(out)
}

// GET /api/learning-list/count/
func (ctrl *LearningListController) Count(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var count int64
	if err := ctrl.DB.Model(&model.LearningListModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		log.Println("[ERROR] failed to count learning list:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count learning list")
	}
	return c.JSON(fiber.Map{"count": count})
}

// GET /api/review-words/
func (ctrl *LearningListController) ReviewWords(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var entries []model.LearningListModel
	if err := ctrl.DB.Preload("Word").Where("user_id = ?", userID).Find(&entries).Error; err != nil {
		log.Println("[ERROR] failed to load review words:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load review words")
	}

	out := make([]fiber.Map, 0, len(entries))
	for _, e := range entries {
		out = append(out, fiber.Map{
			"id":      e.Word.ID,
			"text":    e.Word.WordText,
			"meaning": e.Word.WordMeaning,
		})
	}
	return c.JSON(out)
}
