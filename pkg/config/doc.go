// Package config defines the gateway configuration model and its loading
// pipeline.
//
// Configuration is resolved in four stages:
//
//  1. YAML file (optional; defaults are complete enough to run without one)
//  2. Defaults for any field left at its zero value
//  3. Environment variable overrides (CRIMSON_* names, plus the bare
//     compatibility names GROQ_API_KEY, OLLAMA_URL, OPENAI_API_KEY,
//     WEATHER_API_KEY and friends)
//  4. Validation of the final result
//
// A file watcher built on fsnotify supports hot reload of the YAML file;
// the new configuration replaces the singleton only when it validates.
package config
