// Package testsupport provides shared fixtures for tests: temp-rooted
// configs, stub executables on PATH, and placeholder image files.
package testsupport
