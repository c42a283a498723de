// Package logger provides leveled logging for Sealbox CLI commands.
//
// The logger supports multiple verbosity levels controlled by command-line
// flags. Output is formatted with semantic prefixes and colors.
//
// # Verbosity Levels
//
// Logging behavior is controlled by two flags:
//
//   - --verbose: Shows info and warning messages
//   - --debug: Shows all messages including debug details
//
// Without flags, only critical warnings are shown.
//
// # Log Methods
//
//	Logger.Infof()            // Shown with --verbose or --debug
//	Logger.Debugf()           // Shown only with --debug
//	Logger.Warnf()            // Shown with --verbose or --debug
//	Logger.WarnfAlways()      // Always shown (critical warnings)
//	Logger.Errorf()           // Shown with --debug
//	Logger.ErrorfAndReturn()  // Logs and returns the error
//
// # Usage
//
// Create a logger with the desired verbosity:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Encrypting %s", path)
//
// Commands create a logger in the root command's PersistentPreRun and
// share it through the cmd package.
package logger
