package projup

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Create projects from templates and keep them backed up"
	MsgNewShort        = "Create a new project"
	MsgCheckShort      = "Validate a template"
	MsgVarsShort       = "List the variables a template expects"
	MsgTemplatesShort  = "Rescan and list the known templates"
	MsgListShort       = "List registered projects"
	MsgRemoveShort     = "Unregister a project"
	MsgBackupShort     = "Push every project to its backup repository"
	MsgCloneShort      = "Clone a project from the backup location"
	MsgAdoptShort      = "Register an existing repository as a project"
	MsgMoveShort       = "Move or rename a registered project"
	MsgConfigShort     = "Change the template and backup locations"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose          = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat           = "Output format: auto, terminal, text, yaml or toml"
	MsgFlagTemplate         = "Template name or directory"
	MsgFlagDefine           = "Define a template variable (name=value), repeatable"
	MsgFlagSoftRemove       = "Keep the backup repository"
	MsgFlagAdoptBackup      = "Push the project right after registering it"
	MsgFlagTemplateLocation = "New template location"
	MsgFlagBackupLocation   = "New backup location"
	MsgFlagSoftConfig       = "Only record the new locations, move nothing"
	MsgFlagInit             = "Write a commented config.toml with the defaults"

	// Error messages
	MsgErrInitPaths    = "failed to initialize paths: %w"
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrTwoTemplates = "template given both as argument and with --template"
	MsgErrNoCommand    = "no command specified"
	MsgErrHelpNotFound = "help command not found"

	// Version output
	MsgVersionFormat = "projup version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/new-long.txt
	msgNewLongRaw string
	MsgNewLong    = strings.TrimSpace(msgNewLongRaw)

	//go:embed msgs/new-example.txt
	msgNewExampleRaw string
	MsgNewExample    = strings.TrimSpace(msgNewExampleRaw)

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/vars-long.txt
	msgVarsLongRaw string
	MsgVarsLong    = strings.TrimSpace(msgVarsLongRaw)

	//go:embed msgs/templates-long.txt
	msgTemplatesLongRaw string
	MsgTemplatesLong    = strings.TrimSpace(msgTemplatesLongRaw)

	//go:embed msgs/remove-long.txt
	msgRemoveLongRaw string
	MsgRemoveLong    = strings.TrimSpace(msgRemoveLongRaw)

	//go:embed msgs/backup-long.txt
	msgBackupLongRaw string
	MsgBackupLong    = strings.TrimSpace(msgBackupLongRaw)

	//go:embed msgs/clone-long.txt
	msgCloneLongRaw string
	MsgCloneLong    = strings.TrimSpace(msgCloneLongRaw)

	//go:embed msgs/adopt-long.txt
	msgAdoptLongRaw string
	MsgAdoptLong    = strings.TrimSpace(msgAdoptLongRaw)

	//go:embed msgs/move-long.txt
	msgMoveLongRaw string
	MsgMoveLong    = strings.TrimSpace(msgMoveLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
