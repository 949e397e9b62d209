// Copyright The OpenTelemetry Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package global holds the SDK-wide default logger used to report
// background errors (a failed export, a processor shutdown that errored)
// that have no caller left to return them to.
package global // import "go.opentelemetry.io/otelcore/sdk/internal/global"

import (
	"log"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var (
	mu     sync.RWMutex
	logger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))
)

// SetLogger replaces the package-wide default logger. Providers constructed
// without an explicit logr.Logger of their own fall back to whatever is
// current here at construction time.
func SetLogger(l logr.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// Logger returns the current package-wide default logger.
func Logger() logr.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Handle reports err through the package-wide default logger at error
// level, for background failures (a batch export, a reader shutdown) with
// no caller able to receive a returned error. A nil err is a no-op.
func Handle(err error) {
	if err == nil {
		return
	}
	Logger().Error(err, "otelcore: background operation failed")
}
