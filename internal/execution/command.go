package execution

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"surefire/internal/booter"
	"surefire/internal/domain"
	"surefire/internal/tokens"
)

const (
	// DefaultJVM is used when no JVM path is configured
	DefaultJVM = "java"
	// JUnitMain runs the classes of a directory battery
	JUnitMain = "org.junit.runner.JUnitCore"
	// TestNGMain runs a suite descriptor
	TestNGMain = "org.testng.TestNG"
	// ChildDelegationProperty carries the child delegation flag into forked runners
	ChildDelegationProperty = "childDelegation"
)

// Launch is one runner invocation planned from a battery
type Launch struct {
	Name      string
	Battery   domain.BatteryKind
	Classes   []string
	MainClass string
	Args      []string
}

// Command is a fully composed process invocation
type Command struct {
	Path string
	Args []string
	// Env is nil to inherit the current environment
	Env []string
	// Dir is empty to inherit the current directory
	Dir string
}

// String renders the command line for logs
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// directoryLaunches plans the JUnit launches of a directory battery: one per class when
// forking per test, otherwise one for every class.
func directoryLaunches(b *booter.Booter, battery domain.Battery, classes []string) []Launch {
	if len(classes) == 0 {
		return nil
	}
	if b.ForkMode == domain.ForkPerTest {
		launches := make([]Launch, 0, len(classes))
		for _, class := range classes {
			launches = append(launches, Launch{
				Name:      class,
				Battery:   domain.DirectoryBattery,
				Classes:   []string{class},
				MainClass: JUnitMain,
				Args:      []string{class},
			})
		}
		return launches
	}

	name := classes[0]
	if len(classes) > 1 {
		name = filepath.Base(battery.Directory)
	}
	return []Launch{{
		Name:      name,
		Battery:   domain.DirectoryBattery,
		Classes:   classes,
		MainClass: JUnitMain,
		Args:      append([]string(nil), classes...),
	}}
}

// suiteLaunch plans the TestNG launch of a suite battery
func suiteLaunch(b *booter.Booter, battery domain.Battery) Launch {
	var args []string
	if b.ReportsDirectory != "" {
		args = append(args, "-d", filepath.Join(b.ReportsDirectory, "testng"))
	}
	if b.Groups != "" {
		args = append(args, "-groups", b.Groups)
	}
	if b.ExcludedGroups != "" {
		args = append(args, "-excludegroups", b.ExcludedGroups)
	}
	if b.Parallel {
		args = append(args, "-parallel", "methods")
	}
	if b.ThreadCount > 0 {
		args = append(args, "-threadcount", strconv.Itoa(b.ThreadCount))
	}
	args = append(args, battery.SuiteFile)

	base := filepath.Base(battery.SuiteFile)
	return Launch{
		Name:      strings.TrimSuffix(base, filepath.Ext(base)),
		Battery:   domain.SuiteBattery,
		MainClass: TestNGMain,
		Args:      args,
	}
}

// NewCommand composes the runner process for a launch:
// <jvm> [argLine] -D<key>=<value>... -cp <classpath> <main> <args...>
// Fork settings (JVM, argLine, environment, working directory) only apply when forking.
func NewCommand(b *booter.Booter, l Launch) Command {
	cmd := Command{Path: DefaultJVM}
	props := b.SystemProperties

	if fork := b.Fork; fork != nil {
		if fork.JVM != "" {
			cmd.Path = fork.JVM
		}
		cmd.Args = append(cmd.Args, tokens.SplitWhitespace(fork.ArgLine, -1)...)
		props = fork.Properties.With(ChildDelegationProperty, strconv.FormatBool(fork.ChildDelegation))

		cmd.Env = os.Environ()
		keys := make([]string, 0, len(fork.EnvironmentVariables))
		for k := range fork.EnvironmentVariables {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			cmd.Env = append(cmd.Env, k+"="+fork.EnvironmentVariables[k])
		}

		cmd.Dir = fork.WorkingDirectory
		if cmd.Dir == "" {
			cmd.Dir = fork.Basedir
		}
	}

	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		cmd.Args = append(cmd.Args, "-D"+key+"="+value)
	}
	if len(b.Classpath) > 0 {
		cmd.Args = append(cmd.Args, "-cp", strings.Join(b.Classpath, string(os.PathListSeparator)))
	}
	cmd.Args = append(cmd.Args, l.MainClass)
	cmd.Args = append(cmd.Args, l.Args...)

	return cmd
}
