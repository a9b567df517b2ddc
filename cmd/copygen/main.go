package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-marketing/cmd/internal/app"
	"ai-marketing/config"
	"ai-marketing/generator"
	"ai-marketing/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(buildGenerator).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// buildGenerator 는 서버와 같은 설정 파일과 환경변수로 생성기를 만든다.
// CLI 출력은 stdout 의 JSON 이므로 로그 레벨은 플래그 값을 그대로 쓴다.
func buildGenerator(ctx context.Context, logLevel string) *generator.Generator {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(logLevel)
	return app.NewGenerator(ctx, cfg, os.Getenv)
}
