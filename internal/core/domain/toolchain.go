package domain

// Toolchain names the collaborator tools the orchestrator drives.
type Toolchain struct {
	// Generator is the build-file generator executable.
	Generator string
	// Backend is the generator backend selected with -G.
	Backend string
	// Executor is the build executor invoked after configure.
	Executor string
	// CCompiler and CXXCompiler are passed to the generator as the compiler pair.
	CCompiler   string
	CXXCompiler string
	// SourceDir is the project source directory relative to the build directory.
	SourceDir string
}

// DefaultToolchain returns the CMake + Ninja + clang-cl toolchain.
func DefaultToolchain() Toolchain {
	return Toolchain{
		Generator:   "cmake",
		Backend:     "Ninja",
		Executor:    "ninja",
		CCompiler:   "clang-cl",
		CXXCompiler: "clang-cl",
		SourceDir:   "..",
	}
}

// ConfigureCommand returns the generator invocation for the build directory dir.
func (t Toolchain) ConfigureCommand(dir string) Command {
	return NewCommand(dir, t.Generator,
		t.SourceDir,
		"-G", t.Backend,
		"-DCMAKE_C_COMPILER="+t.CCompiler,
		"-DCMAKE_CXX_COMPILER="+t.CXXCompiler,
		"-DCMAKE_EXPORT_COMPILE_COMMANDS=ON",
	)
}

// BuildCommand returns the build executor invocation. It takes no arguments
// and relies on the artifacts configure produced in dir.
func (t Toolchain) BuildCommand(dir string) Command {
	return NewCommand(dir, t.Executor)
}

// ConfigureTools lists the tools that must resolve before configure.
func (t Toolchain) ConfigureTools() []string {
	return []string{t.Generator}
}

// BuildTools lists the tools that must resolve before build or run.
func (t Toolchain) BuildTools() []string {
	tools := []string{t.Executor, t.CXXCompiler}
	if t.CCompiler != t.CXXCompiler {
		tools = append(tools, t.CCompiler)
	}
	return tools
}
