// Copyright 2025 The Deployah Authors
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

package logging

// Log output format.
const (
	LogPrefix     = "stepindicator"
	LogTimeFormat = "15:04:05"
)

// Metric names recorded by the collector.
const (
	MetricLogs   = "stepindicator.logs.count"
	MetricErrors = "stepindicator.errors.count"
)
