package ports

// ToolLocator resolves collaborator tools on the execution path.
//
//go:generate mockgen -source=tool_locator.go -destination=mocks/mock_tool_locator.go -package=mocks
type ToolLocator interface {
	// LookPath returns the resolved path of the named tool, or an error
	// matching domain.ErrToolMissing.
	LookPath(name string) (string, error)
}
