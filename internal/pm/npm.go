package pm

// NpmManager implements PackageManager using npm.
type NpmManager struct{}

func (n *NpmManager) Name() string { return "npm" }

func (n *NpmManager) InstallCommand() string { return "npm install" }

func (n *NpmManager) RunCommand(script string) string {
	if script == "start" || script == "test" {
		return "npm " + script
	}
	return "npm run " + script
}
