package service

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"socialhub_backend/internal/config"
	"strings"
	"time"
)

const assistantSystemPrompt = "你是 SocialHub 社区的智能助手，请友好、简洁地回答用户的问题。"

// AssistantService 对接 OpenAI 兼容的 chat-completion 接口。
// 远端视为不透明协作方：不重试，超时由 http.Client 控制。
type AssistantService struct {
	config config.AssistantConfig
	client *http.Client
}

func NewAssistantService(cfg config.AssistantConfig) *AssistantService {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &AssistantService{
		config: cfg,
		client: &http.Client{Timeout: timeout},
	}
}

type AssistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string             `json:"model"`
	Messages []AssistantMessage `json:"messages"`
	Stream   bool               `json:"stream,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AssistantMessage `json:"message"`
		Delta   AssistantMessage `json:"delta"` // 流式响应
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *AssistantService) buildMessages(prompt string) []AssistantMessage {
	return []AssistantMessage{
		{Role: "system", Content: assistantSystemPrompt},
		{Role: "user", Content: prompt},
	}
}

func (s *AssistantService) newRequest(body ChatCompletionRequest) (*http.Request, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequest("POST", s.config.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	return req, nil
}

// Ask 单轮问答，返回完整回答文本
func (s *AssistantService) Ask(prompt string) (string, error) {
	req, err := s.newRequest(ChatCompletionRequest{
		Model:    s.config.Model,
		Messages: s.buildMessages(prompt),
	})
	if err != nil {
		return "", err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("assistant API error (status %d): %s", resp.StatusCode, string(body))
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}

	if completion.Error != nil {
		return "", fmt.Errorf("assistant API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("assistant API returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// AskStream SSE 流式问答，逐段返回回答文本
func (s *AssistantService) AskStream(prompt string) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errChan)

		req, err := s.newRequest(ChatCompletionRequest{
			Model:    s.config.Model,
			Messages: s.buildMessages(prompt),
			Stream:   true,
		})
		if err != nil {
			errChan <- err
			return
		}

		resp, err := s.client.Do(req)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("assistant API error (status %d): %s", resp.StatusCode, string(body))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var streamResp ChatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if len(streamResp.Choices) > 0 {
				content := streamResp.Choices[0].Delta.Content
				if content != "" {
					out <- content
				}
			}
		}
	}()

	return out, errChan
}
