package service

import (
	"bytes"
	"context"
	"fmt"

	"progress_clock_backend/internal/model"
	"progress_clock_backend/internal/render"
	"progress_clock_backend/internal/util"
	"progress_clock_backend/pkg/logger"
	"progress_clock_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ExportService struct {
	Clock   *ClockService
	Storage StorageProvider
}

func NewExportService(clock *ClockService, storage StorageProvider) *ExportService {
	return &ExportService{Clock: clock, Storage: storage}
}

// Export 渲染 SVG 并上传到存储，对象名为 clocks/<uuid>.svg
func (s *ExportService) Export(ctx context.Context, current, total int, subject string) (*model.ExportResult, error) {
	data, err := s.Clock.SVG(ctx, current, total)
	if err != nil {
		return nil, err
	}

	key := util.ExportPrefix + uuid.NewString() + ".svg"
	url, err := s.Storage.Upload(ctx, key, bytes.NewReader(data), int64(len(data)), render.ContentType)
	if err != nil {
		monitoring.ClockExports.WithLabelValues(s.Storage.Name(), "failed").Inc()
		logger.Log.Error("Clock export failed", zap.String("key", key), zap.String("storage", s.Storage.Name()), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", util.ErrStorageUnavailable, err)
	}
	monitoring.ClockExports.WithLabelValues(s.Storage.Name(), "ok").Inc()
	logger.Log.Info("Clock exported", zap.String("key", key), zap.String("subject", subject))

	return &model.ExportResult{
		Key:     key,
		URL:     url,
		Current: current,
		Total:   total,
		Wedges:  total,
		Subject: subject,
	}, nil
}
