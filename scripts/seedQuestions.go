package main

import (
	"encoding/json"
	"log"

	"github.com/RyanYahya/NarraPrep/config"
	"github.com/RyanYahya/NarraPrep/database"
	"github.com/RyanYahya/NarraPrep/models"
)

type seedOption struct {
	Content   string
	IsCorrect bool
}

type seedQuestion struct {
	Text        string
	Explanation string
	Category    string
	Difficulty  string
	Tags        []string
	Options     []seedOption
}

var sampleQuestions = []seedQuestion{
	{
		Text:        "Which of the following is NOT a branch of the external carotid artery?",
		Explanation: "The ophthalmic artery is a branch of the internal carotid artery, not the external carotid artery. The other options are all branches of the external carotid artery.",
		Category:    models.CategoryAnatomy,
		Difficulty:  models.DifficultyMedium,
		Tags:        []string{"head", "neck", "arteries", "carotid"},
		Options: []seedOption{
			{Content: "Facial artery"},
			{Content: "Maxillary artery"},
			{Content: "Ophthalmic artery", IsCorrect: true},
			{Content: "Superficial temporal artery"},
		},
	},
	{
		Text:        "Which hormone is primarily responsible for regulating blood calcium levels by increasing calcium absorption from the intestines?",
		Explanation: "Calcitriol, the active form of vitamin D, is primarily responsible for increasing calcium absorption from the intestines. PTH acts mainly on bone and kidney, calcitonin lowers blood calcium, and cortisol has minimal direct effect on calcium homeostasis.",
		Category:    models.CategoryPhysiology,
		Difficulty:  models.DifficultyMedium,
		Tags:        []string{"endocrinology", "calcium", "hormones", "vitamin D"},
		Options: []seedOption{
			{Content: "Parathyroid hormone"},
			{Content: "Calcitriol", IsCorrect: true},
			{Content: "Calcitonin"},
			{Content: "Cortisol"},
		},
	},
	{
		Text:        "A 67-year-old patient presents with fatigue, weight loss, and bone pain. Laboratory studies show hypercalcemia, anemia, and elevated total protein. Which of the following is the most likely diagnosis?",
		Explanation: "Multiple myeloma produces the classic triad of hypercalcemia, anemia, and elevated total protein due to monoclonal gammopathy, with bone pain from lytic lesions.",
		Category:    models.CategoryPathology,
		Difficulty:  models.DifficultyHard,
		Tags:        []string{"hematology", "oncology", "plasma cell disorders"},
		Options: []seedOption{
			{Content: "Chronic lymphocytic leukemia"},
			{Content: "Multiple myeloma", IsCorrect: true},
			{Content: "Paget's disease of bone"},
			{Content: "Metastatic breast cancer"},
		},
	},
	{
		Text:        "Which antibiotic mechanism involves inhibition of bacterial cell wall synthesis?",
		Explanation: "Beta-lactams bind penicillin-binding proteins and prevent peptidoglycan cross-linking. Aminoglycosides act on the 30S ribosomal subunit, fluoroquinolones on DNA gyrase, and sulfonamides on folic acid synthesis.",
		Category:    models.CategoryPharmacology,
		Difficulty:  models.DifficultyEasy,
		Tags:        []string{"antibiotics", "microbiology", "cell wall"},
		Options: []seedOption{
			{Content: "Aminoglycosides"},
			{Content: "Fluoroquinolones"},
			{Content: "Beta-lactams", IsCorrect: true},
			{Content: "Sulfonamides"},
		},
	},
	{
		Text:        "Which of the following bacteria is NOT typically considered part of the normal human microbiota?",
		Explanation: "Clostridium tetani is found primarily in soil and animal feces, not as part of the normal human microbiota. E. coli inhabits the gut, S. epidermidis the skin, and Lactobacillus the vaginal flora.",
		Category:    models.CategoryMicrobiology,
		Difficulty:  models.DifficultyMedium,
		Tags:        []string{"microbiota", "bacteria", "normal flora"},
		Options: []seedOption{
			{Content: "Escherichia coli"},
			{Content: "Staphylococcus epidermidis"},
			{Content: "Clostridium tetani", IsCorrect: true},
			{Content: "Lactobacillus species"},
		},
	},
}

func main() {
	// Load config and connect to database
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	inserted := 0
	for _, sq := range sampleQuestions {
		// Skip questions that are already present
		var existing models.Question
		if err := db.Where("text = ?", sq.Text).First(&existing).Error; err == nil {
			continue
		}

		tagsJSON, _ := json.Marshal(sq.Tags)

		question := models.Question{
			Text:        sq.Text,
			Explanation: sq.Explanation,
			Category:    sq.Category,
			Difficulty:  sq.Difficulty,
			Tags:        tagsJSON,
		}

		for i, opt := range sq.Options {
			question.Options = append(question.Options, models.QuestionOption{
				Content:    opt.Content,
				OptionType: models.OptionTypeText,
				IsCorrect:  opt.IsCorrect,
				OrderIndex: i,
			})
		}

		if err := db.Create(&question).Error; err != nil {
			log.Printf("Failed to insert question %q: %v", sq.Text, err)
			continue
		}
		inserted++
	}

	log.Printf("Seeding complete. Inserted %d questions.", inserted)
}
