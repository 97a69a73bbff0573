package transit

// dehradunStations is a small real-world network used by the property tests
func dehradunStations() []Station {
	return []Station{
		{ID: "Graphic Era Deemed", Location: Coordinate{Lat: 30.2686, Lng: 77.9946}},
		{ID: "Graphic Era Hill", Location: Coordinate{Lat: 30.2730, Lng: 77.9990}},
		{ID: "Max Hospital", Location: Coordinate{Lat: 30.3740, Lng: 78.0810}},
		{ID: "Pacific Mall", Location: Coordinate{Lat: 30.3680, Lng: 78.0750}},
		{ID: "Clock Tower", Location: Coordinate{Lat: 30.3244, Lng: 78.0419}},
		{ID: "Karanpur", Location: Coordinate{Lat: 30.3332, Lng: 78.0520}},
		{ID: "Garhi Cantt", Location: Coordinate{Lat: 30.3470, Lng: 78.0210}},
		{ID: "Khalanga", Location: Coordinate{Lat: 30.3600, Lng: 78.1160}},
		{ID: "Raipur", Location: Coordinate{Lat: 30.3110, Lng: 78.0900}},
		{ID: "Jogiwala", Location: Coordinate{Lat: 30.2900, Lng: 78.0570}},
		{ID: "ISBT", Location: Coordinate{Lat: 30.2880, Lng: 78.0010}},
		{ID: "Majra", Location: Coordinate{Lat: 30.2960, Lng: 78.0110}},
		{ID: "Subhash Nagar", Location: Coordinate{Lat: 30.2780, Lng: 78.0120}},
		{ID: "FRI Dehradun", Location: Coordinate{Lat: 30.3430, Lng: 77.9990}},
		{ID: "Prem Nagar", Location: Coordinate{Lat: 30.3350, Lng: 77.9600}},
		{ID: "Sudhowala", Location: Coordinate{Lat: 30.3290, Lng: 77.9360}},
		{ID: "Banjarawala", Location: Coordinate{Lat: 30.2760, Lng: 78.0260}},
		{ID: "Mussoorie", Location: Coordinate{Lat: 30.4598, Lng: 78.0644}},
	}
}

func dehradunEdges() []PresetEdge {
	return []PresetEdge{
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

// twoIslands returns two tight clusters far enough apart that nearest-neighbor
// augmentation never bridges them
func twoIslands() []Station {
	return []Station{
		{ID: "A1", Location: Coordinate{Lat: 0, Lng: 0}},
		{ID: "A2", Location: Coordinate{Lat: 0, Lng: 0.01}},
		{ID: "A3", Location: Coordinate{Lat: 0.01, Lng: 0}},
		{ID: "B1", Location: Coordinate{Lat: 10, Lng: 10}},
		{ID: "B2", Location: Coordinate{Lat: 10, Lng: 10.01}},
		{ID: "B3", Location: Coordinate{Lat: 10.01, Lng: 10}},
	}
}
