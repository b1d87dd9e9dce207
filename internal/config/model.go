package config

// File is the decoded settings file.
type File struct {
	Output *Output `hcl:"output,block"`
	Log    *Log    `hcl:"log,block"`
}

// Output configures how results are written.
type Output struct {
	Format *string `hcl:"format,optional"`
	Dump   *bool   `hcl:"dump,optional"`
}

// Log configures the application logger.
type Log struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// OutputFormat returns the configured output format, if any.
func (f *File) OutputFormat() (string, bool) {
	if f == nil || f.Output == nil || f.Output.Format == nil {
		return "", false
	}
	return *f.Output.Format, true
}

// OutputDump returns the configured dump switch, if any.
func (f *File) OutputDump() (bool, bool) {
	if f == nil || f.Output == nil || f.Output.Dump == nil {
		return false, false
	}
	return *f.Output.Dump, true
}

// LogLevel returns the configured log level, if any.
func (f *File) LogLevel() (string, bool) {
	if f == nil || f.Log == nil || f.Log.Level == nil {
		return "", false
	}
	return *f.Log.Level, true
}

// LogFormat returns the configured log format, if any.
func (f *File) LogFormat() (string, bool) {
	if f == nil || f.Log == nil || f.Log.Format == nil {
		return "", false
	}
	return *f.Log.Format, true
}
