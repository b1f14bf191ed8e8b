// Package paths provides centralized path handling for projup.
//
// All per-user files live in XDG base directories:
//
//	$XDG_DATA_HOME/projup/templates.txt    known templates and their location
//	$XDG_DATA_HOME/projup/projects.txt     registered projects and the backup location
//	$XDG_DATA_HOME/projup/templates/       default template location
//	$XDG_DATA_HOME/projup/backups/         default backup location
//	$XDG_CONFIG_HOME/projup/config.toml    user settings
//	$XDG_STATE_HOME/projup/projup.log      log file
//
// PROJUP_DATA_DIR and PROJUP_CONFIG_DIR replace the data and config
// directories entirely.
package paths
