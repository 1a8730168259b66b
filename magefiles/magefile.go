//go:build mage

// Package main provides build targets for packlist using Mage.
//
// Usage:
//
//	mage build   Compile the packlist binary to bin/
//	mage test    Run all tests
//	mage vet     Run go vet
//	mage run     Build and start the API server
//	mage clean   Remove build artifacts
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "packlist"
	binaryDir  = "bin"
	cmdDir     = "./cmd/server"
	versionVar = "github.com/sakif/packlist/internal/cli.Version"
)

// Build compiles the packlist binary to bin/, stamping the git version.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || version == "" {
		version = "dev"
	}
	return sh.RunV(binGo, "build", "-v",
		"-ldflags", "-X "+versionVar+"="+version,
		"-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests. Set TEST_POSTGRES_DSN to include the postgres store.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Run builds and starts the API server.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "serve")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
