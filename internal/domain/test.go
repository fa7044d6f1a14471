package domain

// SelectionMode tells which source decided the tests in scope
type SelectionMode int

const (
	// IncludeExclude scans the test classes directory with include/exclude globs
	IncludeExclude SelectionMode = iota
	// NamedFilter scans with includes derived from an explicit test-name filter
	NamedFilter
	// SuiteDescriptors runs externally defined suite files
	SuiteDescriptors
)

func (m SelectionMode) String() string {
	switch m {
	case NamedFilter:
		return "named-filter"
	case SuiteDescriptors:
		return "suite-descriptors"
	default:
		return "include-exclude"
	}
}

// BatteryKind identifies a test-discovery strategy
type BatteryKind int

const (
	// DirectoryBattery discovers compiled test classes by scanning a directory
	DirectoryBattery BatteryKind = iota
	// SuiteBattery runs a single suite descriptor file
	SuiteBattery
)

func (k BatteryKind) String() string {
	if k == SuiteBattery {
		return "suite"
	}
	return "directory"
}

// Battery is a discovery strategy plus its parameters
type Battery struct {
	Kind      BatteryKind
	Directory string   // Directory battery: root to scan
	Includes  []string // Directory battery: include globs
	Excludes  []string // Directory battery: exclude globs
	SuiteFile string   // Suite battery: descriptor path
}

// Selection is the resolved set of tests in scope for a run
type Selection struct {
	Mode       SelectionMode
	Includes   []string
	Excludes   []string
	SuiteFiles []string
}

// Batteries turns the selection into the batteries to run against testClassesDir.
// A suite selection without any existing file yields no batteries.
func (s Selection) Batteries(testClassesDir string) []Battery {
	if s.Mode == SuiteDescriptors {
		batteries := make([]Battery, 0, len(s.SuiteFiles))
		for _, file := range s.SuiteFiles {
			batteries = append(batteries, Battery{Kind: SuiteBattery, SuiteFile: file})
		}
		return batteries
	}

	return []Battery{{
		Kind:      DirectoryBattery,
		Directory: testClassesDir,
		Includes:  s.Includes,
		Excludes:  s.Excludes,
	}}
}

// ArtifactRef identifies a resolved plugin artifact
type ArtifactRef struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	File       string `yaml:"file"`
}

// String returns the group:artifact:file form accepted on the command line
func (a ArtifactRef) String() string {
	return a.GroupID + ":" + a.ArtifactID + ":" + a.File
}
