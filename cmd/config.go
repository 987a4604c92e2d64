package cmd

type Config struct {
	LogLevel string
	NoColor  bool
}
