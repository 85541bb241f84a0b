package domain

import (
	"fmt"
	"strings"
)

// Callback payloads ride through Telegram's callback data as a
// colon-separated action tag plus up to three short string fields. Fields
// must not contain colons; everything else round-trips unchanged.

const (
	CelebrityCallbackPrefix  = "celebrity"
	QuizCallbackPrefix       = "quiz"
	TranslatorCallbackPrefix = "translator"
	MediaCallbackPrefix      = "media"
)

const (
	QuizActionSelectTopic  = "select_topic"
	QuizActionNextQuestion = "next_question"
	QuizActionChangeTopic  = "change_topic"
	QuizActionFinish       = "finish"
)

const (
	MediaActionSelectCategory = "select_category"
	MediaActionSelectGenre    = "select_genre"
	MediaActionDislike        = "dislike"
	MediaActionFinish         = "finish"
)

type CelebrityCallback struct {
	PromptKey string
}

func (c CelebrityCallback) Pack() string {
	return pack(CelebrityCallbackPrefix, "select", c.PromptKey)
}

func ParseCelebrityCallback(data string) (CelebrityCallback, error) {
	fields, err := unpack(data, CelebrityCallbackPrefix, 3)
	if err != nil {
		return CelebrityCallback{}, err
	}
	return CelebrityCallback{PromptKey: fields[2]}, nil
}

type QuizCallback struct {
	Action    string
	Topic     string
	TopicName string
}

func (c QuizCallback) Pack() string {
	return pack(QuizCallbackPrefix, c.Action, c.Topic, c.TopicName)
}

func ParseQuizCallback(data string) (QuizCallback, error) {
	fields, err := unpack(data, QuizCallbackPrefix, 4)
	if err != nil {
		return QuizCallback{}, err
	}
	return QuizCallback{Action: fields[1], Topic: fields[2], TopicName: fields[3]}, nil
}

type TranslatorCallback struct {
	Direction Direction
}

func (c TranslatorCallback) Pack() string {
	return pack(TranslatorCallbackPrefix, string(c.Direction))
}

func ParseTranslatorCallback(data string) (TranslatorCallback, error) {
	fields, err := unpack(data, TranslatorCallbackPrefix, 2)
	if err != nil {
		return TranslatorCallback{}, err
	}
	d := Direction(fields[1])
	if !d.Valid() {
		return TranslatorCallback{}, fmt.Errorf("unknown translation direction %q", fields[1])
	}
	return TranslatorCallback{Direction: d}, nil
}

type MediaCallback struct {
	Action   string
	Category string
	Genre    string
}

func (c MediaCallback) Pack() string {
	return pack(MediaCallbackPrefix, c.Action, c.Category, c.Genre)
}

func ParseMediaCallback(data string) (MediaCallback, error) {
	fields, err := unpack(data, MediaCallbackPrefix, 4)
	if err != nil {
		return MediaCallback{}, err
	}
	return MediaCallback{Action: fields[1], Category: fields[2], Genre: fields[3]}, nil
}

func pack(prefix string, fields ...string) string {
	return prefix + ":" + strings.Join(fields, ":")
}

// unpack splits callback data and pads missing trailing fields with empty
// strings, so shorter payloads of the same prefix still parse.
func unpack(data, prefix string, n int) ([]string, error) {
	parts := strings.SplitN(data, ":", n+1)
	if parts[0] != prefix {
		return nil, fmt.Errorf("callback data %q: expected prefix %q", data, prefix)
	}
	if len(parts) < 2 {
		return nil, fmt.Errorf("callback data %q: no action", data)
	}
	for len(parts) < n {
		parts = append(parts, "")
	}
	return parts[:n], nil
}
