package tvconfig

// Default returns the hardcoded configuration a fresh editor starts with.
// Reset is replacement with this value.
func Default() TemplateData {
	return TemplateData{
		Logo:            "https://logos-world.net/wp-content/uploads/2020/06/Hilton-Logo.png",
		BackgroundImage: "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1920&h=1080&fit=crop",
		Cards: Cards{
			Welcome: Card{
				Image:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=600&h=300&fit=crop",
				Title:      "Hilton Honors",
				Subtitle:   "Join Hilton Honors and discover all the exclusive benefits waiting for you!",
				ButtonText: "Learn more",
				Size:       DefaultCardSize,
				Position:   PositionCenter,
			},
			Flights: Card{
				Image:    "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=600&h=300&fit=crop",
				Title:    "Flight status",
				Size:     DefaultCardSize,
				Position: PositionCenter,
			},
			Hotel: Card{
				Image:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=400&h=200&fit=crop",
				Title:    "Enjoy your Hotel",
				Size:     DefaultCardSize,
				Position: PositionCenter,
			},
			Menu: Card{
				Image:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400&h=200&fit=crop",
				Title:    "Menu and services",
				Size:     DefaultCardSize,
				Position: PositionCenter,
			},
			Discover: Card{
				Image:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=200&fit=crop",
				Title:    "Discover El Salvador",
				Size:     DefaultCardSize,
				Position: PositionCenter,
			},
		},
		Apps: Apps{
			StreamTV:   App{Image: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=100&h=100&fit=crop", Name: "Stream TV"},
			Netflix:    App{Image: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=100&h=100&fit=crop", Name: "Netflix", URL: "https://netflix.com"},
			PrimeVideo: App{Image: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=100&h=100&fit=crop", Name: "Prime Video", URL: "https://primevideo.com"},
			Disney:     App{Image: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=100&h=100&fit=crop", Name: "Disney+", URL: "https://disneyplus.com"},
			YouTube:    App{Image: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=100&h=100&fit=crop", Name: "YouTube", URL: "https://youtube.com"},
			WiFi:       App{Image: "https://images.unsplash.com/photo-1574375927938-d5a98e8ffe85?w=100&h=100&fit=crop", Name: "Wi-Fi"},
		},
		Weather: Weather{
			Enabled:     true,
			Location:    "San Salvador, El Salvador",
			Country:     "SV",
			Icon:        "🌤️",
			Temperature: "18.28°C",
		},
		Time: TimeSettings{Enabled: true, Format: Format24h},
	}
}
