package database

import (
	"log"

	quizModel "lingolift_backend/internals/features/quiz/model"
	authModel "lingolift_backend/internals/features/users/auth/model"
	userModel "lingolift_backend/internals/features/users/user/model"
	learningListModel "lingolift_backend/internals/features/vocab/learning_list/model"
	wordModel "lingolift_backend/internals/features/vocab/words/model"
)

// AutoMigrate creates/updates the schema. Gated behind DB_AUTOMIGRATE
// so production deployments can manage schema out of band.
func AutoMigrate() {
	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&authModel.RefreshToken{},
		&wordModel.WordModel{},
		&wordModel.WordAIDefinition{},
		&learningListModel.LearningListModel{},
		&quizModel.QuizAttemptModel{},
		&quizModel.AttemptedQuestionModel{},
	)
	if err != nil {
		log.Fatalf("[ERROR] automigrate failed: %v", err)
	}
	log.Println("[INFO] automigrate done.")
}
