package config

const (
	// DefaultBasedir is the default project base directory
	DefaultBasedir = "."
	// DefaultConfigFile is looked up in the base directory when no config file is given
	DefaultConfigFile = "surefire.yaml"
	// DefaultBuildDir is the build output directory under the base directory
	DefaultBuildDir = "target"
	// DefaultReportsDirName is the reports directory under the build directory
	DefaultReportsDirName = "surefire-reports"
	// DefaultClassesDir is the main output directory under the build directory
	DefaultClassesDir = "classes"
	// DefaultTestClassesDir is the test output directory under the build directory
	DefaultTestClassesDir = "test-classes"
	// DefaultTestSourceDir is the test source directory under the base directory
	DefaultTestSourceDir = "src/test/java"
	// DefaultLocalRepository is the local repository under the user's home directory
	DefaultLocalRepository = ".m2/repository"
	// DefaultReportFormat is the default report format
	DefaultReportFormat = "brief"
	// DefaultForkMode is the default fork mode
	DefaultForkMode = "none"
	// DefaultJVM is the default java executable
	DefaultJVM = "java"
	// DefaultLogLevel is the default log level
	DefaultLogLevel = "info"
)
