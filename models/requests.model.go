package models

// Request payloads validated at the API boundary. Field-level rules use
// validator/v10 tags; cross-field rules (option counts, question refs)
// live in the validators package.

type SignupRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type OptionPayload struct {
	Content    string `json:"content" validate:"required"`
	OptionType string `json:"option_type" validate:"omitempty,oneof=text image"`
	IsCorrect  bool   `json:"is_correct"`
}

type QuestionCreate struct {
	Text        string          `json:"text" validate:"required,min=10"`
	Explanation string          `json:"explanation"`
	Category    string          `json:"category" validate:"omitempty,oneof=anatomy physiology pathology pharmacology microbiology general"`
	Difficulty  string          `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	Tags        []string        `json:"tags"`
	Options     []OptionPayload `json:"options" validate:"required"`
}

type UserCreate struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=STUDENT ADMIN"`
}

type UserUpdate struct {
	Name         *string       `json:"name" validate:"omitempty,min=2"`
	ProfileImage *string       `json:"profile_image"`
	Settings     *UserSettings `json:"settings"`
}

type QuizQuestionRef struct {
	QuestionID uint `json:"question_id" validate:"required"`
	OrderIndex int  `json:"order_index"`
}

type QuizCreate struct {
	Title            string            `json:"title" validate:"required,min=3"`
	Description      string            `json:"description"`
	Category         string            `json:"category" validate:"omitempty,oneof=anatomy physiology pathology pharmacology microbiology general"`
	Difficulty       string            `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	TimeLimitMinutes int               `json:"time_limit_minutes" validate:"gte=0"`
	Tags             []string          `json:"tags"`
	IsPublic         *bool             `json:"is_public"`
	Questions        []QuizQuestionRef `json:"questions" validate:"required,min=1,dive"`
}

type QuizUpdate struct {
	Title            *string           `json:"title" validate:"omitempty,min=3"`
	Description      *string           `json:"description"`
	Category         *string           `json:"category" validate:"omitempty,oneof=anatomy physiology pathology pharmacology microbiology general"`
	Difficulty       *string           `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	TimeLimitMinutes *int              `json:"time_limit_minutes" validate:"omitempty,gte=0"`
	Tags             []string          `json:"tags"`
	IsPublic         *bool             `json:"is_public"`
	Questions        []QuizQuestionRef `json:"questions" validate:"omitempty,min=1,dive"`
}

type AttemptCreate struct {
	QuizID uint `json:"quiz_id" validate:"required"`
}

type AnswerPayload struct {
	QuestionID       uint `json:"question_id" validate:"required"`
	SelectedOptionID uint `json:"selected_option_id" validate:"required"`
	TimeTakenSeconds int  `json:"time_taken_seconds" validate:"gte=0"`
}

type QuestionListQuery struct {
	Category   string `query:"category"`
	Difficulty string `query:"difficulty"`
	Tag        string `query:"tag"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

type QuizListQuery struct {
	Category   string `query:"category"`
	Difficulty string `query:"difficulty"`
	Tag        string `query:"tag"`
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
}

type AttemptUpdate struct {
	Answers     []AnswerPayload `json:"answers" validate:"omitempty,dive"`
	ReviewLater []uint          `json:"review_later"`
	Complete    bool            `json:"complete"`
}
