package loader

import "transitflow/internal/infra/routing/transit"

// DefaultPresetEdges returns the curated Dehradun network shipped with the service
func DefaultPresetEdges() []transit.PresetEdge {
	return []transit.PresetEdge{
		{From: "Graphic Era Deemed", To: "Graphic Era Hill"},
		{From: "Graphic Era Deemed", To: "Max Hospital"},
		{From: "Max Hospital", To: "Pacific Mall"},
		{From: "Pacific Mall", To: "Clock Tower"},
		{From: "Clock Tower", To: "Karanpur"},
		{From: "Karanpur", To: "Garhi Cantt"},
		{From: "Garhi Cantt", To: "Khalanga"},
		{From: "Khalanga", To: "Raipur"},
		{From: "Graphic Era Deemed", To: "Jogiwala"},
		{From: "Jogiwala", To: "Raipur"},
		{From: "ISBT", To: "Majra"},
		{From: "Majra", To: "Subhash Nagar"},
		{From: "Subhash Nagar", To: "Clock Tower"},
		{From: "FRI Dehradun", To: "ISBT"},
		{From: "FRI Dehradun", To: "Prem Nagar"},
		{From: "Prem Nagar", To: "Sudhowala"},
		{From: "Sudhowala", To: "Banjarawala"},
		{From: "Banjarawala", To: "ISBT"},
		{From: "Clock Tower", To: "Mussoorie"},
	}
}
