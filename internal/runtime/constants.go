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

package runtime

// Environment variables consulted when the matching flag is not set.
const (
	// ConfigEnvVar names the indicator file.
	ConfigEnvVar = "STEPINDICATOR_FILE"

	// EnvFileEnvVar names a dotenv file supplying substitution variables.
	EnvFileEnvVar = "STEPINDICATOR_ENV_FILE"
)
