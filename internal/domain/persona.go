package domain

type PersonaID string

const (
	PersonaAtlas      PersonaID = "atlas"
	PersonaPrometheus PersonaID = "prometheus"
	PersonaSisyphus   PersonaID = "sisyphus"
	PersonaHephaestus PersonaID = "hephaestus"
	PersonaOracle     PersonaID = "oracle"
	PersonaExplore    PersonaID = "explore"
	PersonaLibrarian  PersonaID = "librarian"
	PersonaMetis      PersonaID = "metis"
	PersonaMomus      PersonaID = "momus"
	PersonaLooker     PersonaID = "looker"
)

type Persona struct {
	ID          PersonaID
	Name        string
	Description string
	Role        AgentRole
	Prompt      string
}

type AgentRole string

const (
	RoleOrchestrator AgentRole = "orchestrator"
	RoleWorker       AgentRole = "worker"
	RoleUnknown      AgentRole = "unknown"
)
