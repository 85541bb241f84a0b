package domain

// Stage is a named waypoint within one flow's conversation state machine.
type Stage string

const (
	StageChatWaitingForRequest Stage = "chat:waiting_for_request"

	StageCelebrityWaitingForAnswer Stage = "celebrity:waiting_for_answer"

	StageQuizSelectingTopic   Stage = "quiz:selecting_topic"
	StageQuizWaitingForAnswer Stage = "quiz:waiting_for_answer"
	StageQuizWaitingForButton Stage = "quiz:waiting_for_button"

	StageTranslatorSelectingDirection Stage = "translator:selecting_direction"
	StageTranslatorWaitingForText     Stage = "translator:waiting_for_text"

	StageMediaSelectingCategory Stage = "media:selecting_category"
	StageMediaSelectingGenre    Stage = "media:selecting_genre"
	StageMediaWaitingForVerdict Stage = "media:waiting_for_verdict"
)

// Session is the state of the single active flow in a chat. Each flow keeps
// its own variant so a handler only sees fields that exist for its stage.
// Entering any top-level command replaces whatever session was there before.
type Session interface {
	Stage() Stage
}

type ChatSession struct {
	Conversation *Conversation
}

func (*ChatSession) Stage() Stage { return StageChatWaitingForRequest }

type CelebritySession struct {
	PromptKey    string
	Name         string
	Conversation *Conversation
}

func (*CelebritySession) Stage() Stage { return StageCelebrityWaitingForAnswer }

type QuizSession struct {
	Phase        Stage
	Topic        string
	TopicName    string
	Score        int
	Conversation *Conversation
}

func (s *QuizSession) Stage() Stage { return s.Phase }

type TranslatorSession struct {
	Phase     Stage
	Direction Direction
}

func (s *TranslatorSession) Stage() Stage { return s.Phase }

type MediaSession struct {
	Phase        Stage
	Category     string
	Genre        string
	Disliked     []string
	Last         Recommendation
	Conversation *Conversation
}

func (s *MediaSession) Stage() Stage { return s.Phase }
