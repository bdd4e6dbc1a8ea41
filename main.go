/*
Copyright 2017 The Kubernetes Authors.
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ianschenck/envflag"
	"go.uber.org/automaxprocs/maxprocs"
	"k8s.io/klog/v2"

	"github.com/djedi/ddf/cmds"
	"github.com/djedi/ddf/cmds/options"
	"github.com/djedi/ddf/pkg/logger"
	"github.com/djedi/ddf/pkg/metrics"
)

var vendorVersion = "dev" // set by the linker

// loadConfig applies the environment on top of the defaults; command line
// flags override both.
func loadConfig(cfg *options.Config) {
	envflag.StringVar(&cfg.ConfigPath, "DDF_CONFIG", cfg.ConfigPath, "Path to the settings file")
	envflag.StringVar(&cfg.Color, "DDF_COLOR", cfg.Color, "Color mode: auto, always or never")
	envflag.Parse()
}

func main() {
	klog.InitFlags(nil)
	_ = flag.Set("logtostderr", "true")

	// Create a base context with the logger
	ctx := context.Background()
	log := logger.NewLogger(ctx)
	ctx = context.WithValue(ctx, logger.LoggerKey{}, log)
	undoMaxprocs, maxprocsError := maxprocs.Set(maxprocs.Logger(func(msg string, keysAndValues ...interface{}) {
		log.Klogr.WithValues("component", "maxprocs", "version", maxprocs.Version).V(2).Info(fmt.Sprintf(msg, keysAndValues...))
	}))
	defer undoMaxprocs()

	if maxprocsError != nil {
		log.Error(maxprocsError, "Failed to set GOMAXPROCS")
	}

	err := handle(ctx)
	klog.Flush()
	if err != nil {
		if !errors.Is(err, cmds.ErrPathsNotFound) {
			fmt.Fprintf(os.Stderr, "ddf: %v\n", err)
		}
		undoMaxprocs()
		os.Exit(1)
	}
}

func handle(ctx context.Context) error {
	log := logger.GetLogger(ctx)
	log.V(4).Info("Version", "version", vendorVersion)

	metrics.InitTracer("ddf")

	cfg := options.NewConfig()
	loadConfig(cfg)

	return cmds.NewRootCmd(vendorVersion, cfg).ExecuteContext(ctx)
}
