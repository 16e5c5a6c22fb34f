package quizbank

// bankSchema is the JSON Schema the embedded question bank must satisfy.
// Validation happens once at load time so a malformed bank fails fast
// instead of surfacing mid-quiz.
const bankSchema = `{
  "type": "object",
  "required": ["questions"],
  "properties": {
    "questions": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "topic", "text", "format", "answer", "difficulty"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "topic": {"type": "string", "minLength": 1},
          "text": {"type": "string", "minLength": 1},
          "format": {"enum": ["numeric", "multiple_choice"]},
          "choices": {
            "type": "array",
            "items": {"type": "string"},
            "minItems": 4,
            "maxItems": 4
          },
          "answer": {"type": "string", "minLength": 1},
          "difficulty": {
            "enum": ["very_easy", "easy", "medium", "hard", "very_hard"]
          },
          "explanation": {"type": "string"}
        },
        "if": {"properties": {"format": {"const": "multiple_choice"}}},
        "then": {"required": ["choices"]}
      }
    }
  }
}`
