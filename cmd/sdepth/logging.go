package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/phagelab/sampledepth/internal/types"
)

// logEstimate appends one audit record per estimation run to the configured
// log file, so sampling decisions stay traceable after the fact. Rotation is
// handled by lumberjack; a missing log-file setting disables logging.
func logEstimate(result *types.Result) {
	if logFile == "" {
		return
	}

	logF := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    getEnvInt("SDEPTH_LOG_MAX_SIZE", 10),
		MaxBackups: getEnvInt("SDEPTH_LOG_MAX_BACKUPS", 3),
		MaxAge:     getEnvInt("SDEPTH_LOG_MAX_AGE", 30),
		Compress:   getEnvBool("SDEPTH_LOG_COMPRESS", true),
	}
	defer func() { _ = logF.Close() }()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, err := fmt.Fprintf(logF, "[%s] run=%s copies=%g per-sample=%d species=%d mean-copies=%g confidence=%g samples=%d\n",
		timestamp, result.RunID,
		result.Params.TargetCopies, result.Params.PerSample,
		result.Params.TotalSpecies, result.Params.MeanCopies,
		result.Params.Confidence, result.RequiredSamples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write audit log: %v\n", err)
	}
}

func getEnvInt(key string, defaultValue int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1"
	}
	return defaultValue
}
