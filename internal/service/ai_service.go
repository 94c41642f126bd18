package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"studyhub_backend/internal/config"
)

type AIService struct {
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AIService{
		config: cfg,
		// 外部模型调用必须有超时，避免占住请求协程
		client: &http.Client{Timeout: timeout},
	}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AIService) Chat(systemPrompt, userPrompt string) (string, error) {
	reqBody := ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", err
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

// GeneratedNote AI 生成的笔记
type GeneratedNote struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// GeneratedFlashcard AI 生成的记忆卡片
type GeneratedFlashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

const noteSystemPrompt = "You are a study assistant. Generate concise, well-structured study notes. " +
	"Respond ONLY with a JSON object: {\"title\": string, \"content\": string (markdown), \"tags\": string (comma separated)}."

const flashcardSystemPrompt = "You are a study assistant. Generate flashcards for the given material. " +
	"Respond ONLY with a JSON array: [{\"front\": string, \"back\": string}, ...]."

// GenerateNote 根据主题/材料生成笔记。模型输出解析失败时不把请求打挂，
// 而是降级为把原始文本包成一条笔记返回。
func (s *AIService) GenerateNote(topic, material string) (*GeneratedNote, error) {
	userPrompt := fmt.Sprintf("Topic: %s", topic)
	if material != "" {
		userPrompt += fmt.Sprintf("\n\nSource material:\n%s", material)
	}

	raw, err := s.Chat(noteSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var note GeneratedNote
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &note); err != nil || note.Title == "" {
		// 降级：原文直接作为笔记内容
		return &GeneratedNote{Title: topic, Content: raw}, nil
	}
	return &note, nil
}

func (s *AIService) GenerateFlashcards(topic, material string, count int) ([]GeneratedFlashcard, error) {
	if count <= 0 {
		count = 5
	}
	userPrompt := fmt.Sprintf("Topic: %s\nGenerate %d flashcards.", topic, count)
	if material != "" {
		userPrompt += fmt.Sprintf("\n\nSource material:\n%s", material)
	}

	raw, err := s.Chat(flashcardSystemPrompt, userPrompt)
	if err != nil {
		return nil, err
	}

	var cards []GeneratedFlashcard
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &cards); err != nil || len(cards) == 0 {
		// 降级：整段回复作为一张卡片
		return []GeneratedFlashcard{{Front: topic, Back: raw}}, nil
	}
	return cards, nil
}

// stripCodeFence 去掉模型偶尔包裹的 ```json ... ``` 代码栏
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
