package telemetry_test

import (
	"testing"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/rig/internal/adapters/telemetry"
	"go.trai.ch/rig/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestBridge_OnStart(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnStageStart(gomock.Any(), "configure", gomock.Any()).Times(1)

	tracer := sdktrace.NewTracerProvider().Tracer("test")
	ctx, span := tracer.Start(t.Context(), "configure")
	defer span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
	}
}

func TestBridge_NilRenderer(t *testing.T) {
	bridge := telemetry.NewBridge(nil)

	tracer := sdktrace.NewTracerProvider().Tracer("test")
	ctx, span := tracer.Start(t.Context(), "configure")
	span.End()

	if rwSpan, ok := span.(sdktrace.ReadWriteSpan); ok {
		bridge.OnStart(ctx, rwSpan)
		bridge.OnEnd(rwSpan)
	}
}

func TestBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnStageComplete(gomock.Any(), gomock.Any(), nil).Times(1)

	tracer := sdktrace.NewTracerProvider().Tracer("test")
	_, span := tracer.Start(t.Context(), "build")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
}

func TestBridge_OnEndWithError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockRenderer := mocks.NewMockRenderer(ctrl)
	bridge := telemetry.NewBridge(mockRenderer)

	mockRenderer.EXPECT().OnStageComplete(gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).Times(1)

	tracer := sdktrace.NewTracerProvider().Tracer("test")
	_, span := tracer.Start(t.Context(), "build")
	span.SetStatus(codes.Error, "build failed")
	span.End()

	if roSpan, ok := span.(sdktrace.ReadOnlySpan); ok {
		bridge.OnEnd(roSpan)
	}
}
