// Package commands defines the adminctl CLI: the console's operations for
// scripting plus an interactive list browser.
//
// Commands
//
//   - login, logout     Email one-time-code login; the token is kept under ADMINCTL_HOME
//   - dashboard         Headline counters
//   - packages          list | update | bulk-status
//   - shipments         list | status | bill
//   - master-shipments  list | create | status
//   - bills             list | pending | create | verify
//   - pickups           list | status | slots | create-slot | bulk-slots | toggle-slot | delete-slot
//   - requests          list | approve | reject
//   - users             list
//   - rates, exchange-rates, tracking, rewards
//   - browse <entity>   Interactive list with debounced search
//
// # Implementation
//
// The root command loads configuration and builds one backend client bound
// to the token file before any subcommand runs. A 401 from any call clears
// the token file and the command exits with "session expired, run adminctl login".
package commands
