package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/hdfskit/hdfskit/config"
	"github.com/hdfskit/hdfskit/hdfs"
	"github.com/hdfskit/hdfskit/internal/logging"
)

func main() {
	// Parse flags
	target := flag.String("path", "", "Target path to stage")
	includeUser := flag.Bool("user", true, "Include the per-user segment in the staging path")
	snakebite := flag.Bool("snakebite", false, "Native snakebite backend is available on this host")
	dev := flag.Bool("dev", false, "Development logging (console encoder, debug level)")
	flag.Parse()

	logCfg := logging.DefaultConfig()
	if *dev {
		logCfg = logging.Config{Level: "debug", Development: true}
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	resolver := hdfs.NewResolver(cfg, logger, *snakebite)

	fmt.Printf("client:          %s\n", resolver.Client())
	fmt.Printf("hadoop command:  %s\n", strings.Join(resolver.HadoopCommand(), " "))
	fmt.Printf("hadoop version:  %s\n", resolver.HadoopVersion())

	if user, err := resolver.EffectiveUser(); err == nil {
		fmt.Printf("effective user:  %s\n", user)
	} else {
		logger.Warn("Could not resolve effective user", zap.Error(err))
	}
	if addr, ok := resolver.NamenodeAddress(); ok {
		fmt.Printf("namenode:        %s\n", addr)
	}

	staged, err := hdfs.TmpPath(cfg, *target, *includeUser)
	if err != nil {
		logger.Fatal("Failed to compute staging path", zap.Error(err))
	}
	fmt.Printf("staging path:    %s\n", staged)
}
