// Copyright 2025 Florian Zenker (flo@znkr.io)
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

package text

import "znkr.io/hunks/internal/config"

// Option configures the behavior of [Hunks].
type Option = config.Option

// Minimal finds a minimal diff irrespective of the cost. By default, the underlying diff limits the
// cost for large inputs with many differences by applying heuristics.
func Minimal() Option {
	return func(cfg *config.Config) {
		cfg.Minimal = true
	}
}
