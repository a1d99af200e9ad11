package configkeys

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigPowerEggsPrefix = ConfigPrefix + delimiter + "powereggs"

	ConfigSolverPrefix    = ConfigPowerEggsPrefix + delimiter + "solver"
	ConfigSolverStrategy  = ConfigSolverPrefix + delimiter + "strategy"
	ConfigSolverMaxFloors = ConfigSolverPrefix + delimiter + "max_floors"
	ConfigSolverMaxEggs   = ConfigSolverPrefix + delimiter + "max_eggs"

	ConfigPolicyPrefix      = ConfigPowerEggsPrefix + delimiter + "policy"
	ConfigPolicyDropCeiling = ConfigPolicyPrefix + delimiter + "drop_ceiling"

	ConfigRunnerPrefix   = ConfigPowerEggsPrefix + delimiter + "runner"
	ConfigRunnerMemo     = ConfigRunnerPrefix + delimiter + "memo"
	ConfigRunnerMemoSize = ConfigRunnerPrefix + delimiter + "memo_size"

	ConfigEffectPrefix = ConfigPrefix + delimiter + "effect"

	ConfigEffectLogPrefix            = ConfigEffectPrefix + delimiter + "log"
	ConfigEffectLogHandlerBufferSize = ConfigEffectLogPrefix + delimiter + "handler" + delimiter + "buffer_size"
)
