package pm

// PnpmManager implements PackageManager using pnpm.
type PnpmManager struct{}

func (p *PnpmManager) Name() string { return "pnpm" }

func (p *PnpmManager) InstallCommand() string { return "pnpm install" }

// RunCommand uses pnpm's shorthand, which runs scripts without "run".
func (p *PnpmManager) RunCommand(script string) string { return "pnpm " + script }
