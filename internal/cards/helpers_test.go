package cards

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"namelist-generator/internal/engine"
)

func newArgs(name string, values map[string]any) (*engine.Args, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)

	return &engine.Args{Name: name, Values: values, Log: zap.New(core)}, logs
}

func errorCount(logs *observer.ObservedLogs) int {
	return logs.FilterLevelExact(zapcore.ErrorLevel).Len()
}

func atom(name string, x, y, z float64) map[string]any {
	return map[string]any{"@name": name, "$": []any{x, y, z}}
}

func structure(nat int, atoms ...any) map[string]any {
	return map[string]any{
		"@nat": nat,
		"atomic_positions": map[string]any{
			"atom": atoms,
		},
		"cell": map[string]any{
			"a1": []any{10.0, 0.0, 0.0},
			"a2": []any{0.0, 10.0, 0.0},
			"a3": []any{0.0, 0.0, 10.0},
		},
	}
}
