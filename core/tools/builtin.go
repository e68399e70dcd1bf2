package tools

import "github.com/koscakluka/transcript-core/core/agents"

// TimeArguments are the parameters of the current-time tool.
type TimeArguments struct {
	Timezone string `json:"timezone,omitempty" jsonschema:"title=Timezone,description=The timezone to get the current time for"`
}

// TimezoneListArguments are the parameters of the timezone listing tool.
type TimezoneListArguments struct {
	Region string `json:"region,omitempty" jsonschema:"title=Region,description=Filter timezones by region (e.g. Asia or Europe)"`
}

// TimeGroup declares the stdio time tool server the backend ships with.
func TimeGroup() Group {
	return Group{
		Name: "time",
		Config: agents.ToolConfig{
			Command:   "python",
			Args:      []string{"mcp_servers/time_server.py"},
			Transport: "stdio",
		},
		Definitions: []Definition{
			{
				Name:        "get_current_time",
				Description: "Get current time information for the specified timezone.",
				Arguments:   TimeArguments{},
			},
			{
				Name:        "list_timezones",
				Description: "List available timezones, optionally filtered by region.",
				Arguments:   TimezoneListArguments{},
			},
		},
	}
}

// WeatherArguments are the parameters of the weather lookup tool.
type WeatherArguments struct {
	Location string `json:"location" jsonschema:"title=Location,description=The location to get the weather for"`
}

// WeatherGroup declares the stdio weather tool server the backend ships
// with.
func WeatherGroup() Group {
	return Group{
		Name: "weather",
		Config: agents.ToolConfig{
			Command:   "python",
			Args:      []string{"mcp_servers/weather_server.py"},
			Transport: "stdio",
		},
		Definitions: []Definition{
			{
				Name:        "get_weather",
				Description: "Get current weather information for the specified location.",
				Arguments:   WeatherArguments{},
			},
		},
	}
}
