package services

import (
	"log"
	"runtime/debug"

	"github.com/samber/lo"

	"github.com/demoproject/demo-app/internal/validators"
)

// LodashModulePath is the lodash-style utility library whose version the demo reports
const LodashModulePath = "github.com/samber/lo"

// fallbackLodashVersion mirrors the go.mod requirement and is used when build info
// is unavailable (e.g. binaries built without module support)
const fallbackLodashVersion = "v1.52.0"

// BuildInfoReader returns the build information embedded in the running binary
type BuildInfoReader func() (*debug.BuildInfo, bool)

// LibraryVersionService resolves a dependency version once at startup
type LibraryVersionService struct {
	modulePath string
	version    string
}

// NewLibraryVersionService resolves the lodash-style library version from build info
// Pass nil to use debug.ReadBuildInfo
func NewLibraryVersionService(readBuildInfo BuildInfoReader) *LibraryVersionService {
	if readBuildInfo == nil {
		readBuildInfo = debug.ReadBuildInfo
	}

	s := &LibraryVersionService{modulePath: LodashModulePath}
	s.version = s.resolve(readBuildInfo)
	return s
}

// Version returns the resolved version; it never changes for the life of the service
func (s *LibraryVersionService) Version() string {
	return s.version
}

// ModulePath returns the module the version belongs to
func (s *LibraryVersionService) ModulePath() string {
	return s.modulePath
}

func (s *LibraryVersionService) resolve(readBuildInfo BuildInfoReader) string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		log.Printf("WARNING: build info unavailable, reporting %s %s", s.modulePath, fallbackLodashVersion)
		return fallbackLodashVersion
	}

	dep, found := lo.Find(info.Deps, func(m *debug.Module) bool {
		return m != nil && m.Path == s.modulePath
	})
	if !found {
		log.Printf("WARNING: %s not found in build info, reporting %s", s.modulePath, fallbackLodashVersion)
		return fallbackLodashVersion
	}

	// A replace directive pins the version actually linked
	version := dep.Version
	if dep.Replace != nil && dep.Replace.Version != "" {
		version = dep.Replace.Version
	}

	if err := validators.ValidateLibraryVersion(version, "lodashVersion"); err != nil {
		log.Printf("WARNING: %v, reporting %s", err, fallbackLodashVersion)
		return fallbackLodashVersion
	}
	return version
}
