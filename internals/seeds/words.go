package seeds

import (
	"log"

	"gorm.io/gorm"

	wordModel "lingolift_backend/internals/features/vocab/words/model"
)

var starterWords = []wordModel.WordModel{
	{WordText: "serendipity", WordMeaning: "The occurrence of happy or beneficial events by chance.", WordExample: "Meeting her at the bookshop was pure serendipity."},
	{WordText: "ephemeral", WordMeaning: "Lasting for a very short time.", WordExample: "The beauty of the cherry blossoms is ephemeral."},
	{WordText: "ubiquitous", WordMeaning: "Present or found everywhere.", WordExample: "Smartphones have become ubiquitous in daily life."},
	{WordText: "eloquent", WordMeaning: "Fluent and persuasive in speaking or writing.", WordExample: "She gave an eloquent speech at the ceremony."},
	{WordText: "resilient", WordMeaning: "Able to recover quickly from difficulties.", WordExample: "Children are often remarkably resilient."},
	{WordText: "meticulous", WordMeaning: "Showing great attention to detail; very careful.", WordExample: "He kept meticulous records of every expense."},
	{WordText: "candid", WordMeaning: "Truthful and straightforward; frank.", WordExample: "Her candid answer surprised the interviewer."},
	{WordText: "pragmatic", WordMeaning: "Dealing with things sensibly and realistically.", WordExample: "We need a pragmatic approach to the budget."},
	{WordText: "ambiguous", WordMeaning: "Open to more than one interpretation.", WordExample: "The instructions were ambiguous and confusing."},
	{WordText: "tenacious", WordMeaning: "Holding firmly to something; persistent.", WordExample: "Her tenacious spirit carried the team through."},
}

// SeedWords inserts the starter corpus. Idempotent: existing words
// (by text) are left untouched.
func SeedWords(db *gorm.DB) {
	for _, w := range starterWords {
		if err := db.Where("word_text = ?", w.WordText).FirstOrCreate(&w).Error; err != nil {
			log.Printf("[ERROR] seeding word %q failed: %v", w.WordText, err)
		}
	}
	log.Printf("[INFO] word seed done (%d entries ensured)", len(starterWords))
}
