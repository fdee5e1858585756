package llm

import (
	"Inkstone/internal/api/config"
	"context"
	"errors"
	log "log/slog"

	"github.com/tmc/langchaingo/llms"
)

func fetchModel(ctx context.Context, userPrompt string, temp float64) (*llms.ContentResponse, error) {
	if err := TextSem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer TextSem.Release(1)
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}
	log.InfoContext(ctx, "正在请求AI大模型")
	return llmClient.GenerateContent(ctx, messages,
		llms.WithModel(config.Cfg.LLM.TextModel),
		llms.WithTemperature(temp),
	)
}

// Generator 文本生成适配器：prompt 进，生成文本出，错误原样上抛
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (s *Generator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := fetchModel(ctx, prompt, 0.7)
	if err != nil {
		log.ErrorContext(ctx, "AI大模型请求失败", "err", err)
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return "", errors.New("AI大模型返回内容为空")
	}
	return resp.Choices[0].Content, nil
}
