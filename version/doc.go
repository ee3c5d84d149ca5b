// Package version exposes build metadata of the studyverse binary.
//
// Values are injected with ldflags at build time:
//
//	go build -ldflags "-X github.com/ncobase/studyverse/version.Version=v1.2.0 \
//	  -X github.com/ncobase/studyverse/version.Revision=$(git rev-parse --short HEAD)"
//
// When they are not injected, the module version and VCS revision recorded by
// the Go toolchain are used.
package version
