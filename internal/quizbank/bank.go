package quizbank

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed bank.json
var bankData []byte

// Bank is the loaded, validated question bank.
type Bank struct {
	questions []Question
	byTopic   map[string][]Question
}

// Load parses and validates the embedded question bank.
func Load() (*Bank, error) {
	return loadBank(bankData)
}

// loadBank builds a Bank from raw JSON, validating it against bankSchema.
func loadBank(data []byte) (*Bank, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	compiled, err := compileBankSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("question bank failed schema validation: %w", err)
	}

	var doc struct {
		Questions []Question `json:"questions"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode question bank: %w", err)
	}

	b := &Bank{
		questions: doc.Questions,
		byTopic:   make(map[string][]Question),
	}
	seen := make(map[string]bool)
	for _, q := range doc.Questions {
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q in bank", q.ID)
		}
		seen[q.ID] = true
		b.byTopic[q.Topic] = append(b.byTopic[q.Topic], q)
	}
	return b, nil
}

func compileBankSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	var def any
	if err := json.Unmarshal([]byte(bankSchema), &def); err != nil {
		return nil, fmt.Errorf("parse bank schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question_bank.json"
	if err := c.AddResource(schemaURL, def); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile bank schema: %w", err)
	}
	return compiled, nil
}

// Topics returns all topics present in the bank, sorted alphabetically.
func (b *Bank) Topics() []string {
	topics := make([]string, 0, len(b.byTopic))
	for t := range b.byTopic {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	return topics
}

// QuestionsFor returns all bank questions for the given topic.
func (b *Bank) QuestionsFor(topic string) []Question {
	return b.byTopic[topic]
}

// Len returns the total number of questions in the bank.
func (b *Bank) Len() int {
	return len(b.questions)
}
