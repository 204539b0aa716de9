package library

import (
	"time"

	"go-tv-builder/internal/model"
	"go-tv-builder/internal/tvconfig"
)

// Built-in catalog entries. These ship with the editor so the library is
// never empty; operators duplicate them as starting points.

func builtinTVTemplates() []TVTemplate {
	return []TVTemplate{
		{
			ID:          "hotel-hilton",
			Name:        "Hotel Hilton",
			Description: "Elegant hotel template with full guest information",
			Thumbnail:   "https://images.unsplash.com/photo-1551038247-3d9af20df552?w=300&h=200&fit=crop",
			Data: tvconfig.Normalize(tvconfig.TemplateData{
				Logo:            "/placeholder.svg",
				BackgroundImage: "https://images.unsplash.com/photo-1551038247-3d9af20df552?w=1920&h=1080&fit=crop",
				Cards: tvconfig.Cards{
					Welcome: tvconfig.Card{
						Image:      "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b?w=400&h=200&fit=crop",
						Title:      "Welcome",
						Subtitle:   "Welcome to a unique hospitality experience",
						ButtonText: "Explore services",
					},
					Flights: tvconfig.Card{
						Image:      "https://images.unsplash.com/photo-1500673922987-e212871fec22?w=400&h=200&fit=crop",
						Title:      "Flight status",
						Subtitle:   "Check your flight status in real time",
						ButtonText: "View flights",
					},
					Hotel: tvconfig.Card{
						Image:      "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=400&h=200&fit=crop",
						Title:      "Enjoy your Hotel",
						Subtitle:   "Discover every comfort of your room",
						ButtonText: "Room services",
					},
					Menu: tvconfig.Card{
						Image:      "/placeholder.svg",
						Title:      "Menu and services",
						Subtitle:   "Browse our menu and additional services",
						ButtonText: "View menu",
					},
					Discover: tvconfig.Card{
						Image:      "/placeholder.svg",
						Title:      "Discover El Salvador",
						Subtitle:   "Find the best places to visit",
						ButtonText: "Explore destinations",
					},
				},
				Apps:    defaultApps(),
				Weather: tvconfig.Weather{Enabled: true, Location: "San Salvador, El Salvador", Country: "SV", Icon: "🌤️", Temperature: "18.28°C"},
				Time:    tvconfig.TimeSettings{Enabled: true, Format: tvconfig.Format24h},
			}),
			CreatedAt: time.Now(),
		},
		{
			ID:          "business-center",
			Name:        "Business Center",
			Description: "Professional template for business centers",
			Thumbnail:   "https://images.unsplash.com/photo-1497366216548-37526070297c?w=300&h=200&fit=crop",
			Data: tvconfig.Normalize(tvconfig.TemplateData{
				Logo:            "/placeholder.svg",
				BackgroundImage: "https://images.unsplash.com/photo-1497366216548-37526070297c?w=1920&h=1080&fit=crop",
				Cards: tvconfig.Cards{
					Welcome: tvconfig.Card{
						Image:      "https://images.unsplash.com/photo-1497366216548-37526070297c?w=400&h=200&fit=crop",
						Title:      "Welcome to Business Center",
						Subtitle:   "Your professional workspace",
						ButtonText: "Get started",
					},
					Flights: tvconfig.Card{
						Image:      "https://images.unsplash.com/photo-1436491865332-7a61a109cc05?w=400&h=200&fit=crop",
						Title:      "Travel Information",
						Subtitle:   "Travel and transport information",
						ButtonText: "View information",
					},
					Hotel: tvconfig.Card{
						Image:      "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=400&h=200&fit=crop",
						Title:      "Meeting Rooms",
						Subtitle:   "Fully equipped executive meeting rooms",
						ButtonText: "Book a room",
					},
					Menu: tvconfig.Card{
						Image:      "/placeholder.svg",
						Title:      "Business Services",
						Subtitle:   "Specialized business services",
						ButtonText: "View services",
					},
					Discover: tvconfig.Card{
						Image:      "/placeholder.svg",
						Title:      "Local Attractions",
						Subtitle:   "Points of interest nearby",
						ButtonText: "Explore",
					},
				},
				Apps:    defaultApps(),
				Weather: tvconfig.Weather{Enabled: false, Location: "New York, USA", Country: "US"},
				Time:    tvconfig.TimeSettings{Enabled: true, Format: tvconfig.Format12h},
			}),
			CreatedAt: time.Now(),
		},
	}
}

func defaultApps() tvconfig.Apps {
	return tvconfig.Apps{
		StreamTV:   tvconfig.App{Image: "/placeholder.svg", Name: "Stream TV"},
		Netflix:    tvconfig.App{Image: "/placeholder.svg", Name: "Netflix"},
		PrimeVideo: tvconfig.App{Image: "/placeholder.svg", Name: "Prime Video"},
		Disney:     tvconfig.App{Image: "/placeholder.svg", Name: "Disney+"},
		YouTube:    tvconfig.App{Image: "/placeholder.svg", Name: "YouTube"},
		WiFi:       tvconfig.App{Image: "/placeholder.svg", Name: "Wi-Fi"},
	}
}

func builtinWebTemplates() []WebTemplate {
	return []WebTemplate{
		{
			ID:          "hotel-hilton-complete",
			Name:        "Hotel Hilton - Complete Site",
			Description: "Full hotel site bundle with multiple pages",
			Thumbnail:   "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=300&h=200&fit=crop",
			MainFile:    "index.html",
			Files: []model.WebFile{
				{
					Name: "index.html",
					Type: model.FileHTML,
					Path: "/index.html",
					Content: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Hilton San Salvador - Welcome</title>
    <link rel="stylesheet" href="styles/main.css">
</head>
<body>
    <div class="tv-interface">
        <header class="header">
            <div class="logo-section">
                <div class="logo"><div class="logo-icon">H</div></div>
                <div class="brand-info"><h1>Hilton</h1><p>SAN SALVADOR</p></div>
            </div>
            <div class="time-weather">
                <div class="time" id="currentTime">12:30</div>
                <div class="weather"><span class="weather-icon">🌤️</span><span class="temperature">18.28°C</span></div>
            </div>
        </header>
        <main class="main-content">
            <div class="main-cards">
                <div class="card welcome-card">
                    <div class="card-content">
                        <h2>Hilton Honors</h2>
                        <p>Join Hilton Honors and discover every exclusive benefit waiting for you!</p>
                        <button class="cta-button" onclick="navigateTo('honors.html')">Learn more</button>
                    </div>
                </div>
                <div class="card flight-card" onclick="navigateTo('flights.html')">
                    <div class="card-overlay"><h3>Flight status</h3></div>
                </div>
            </div>
            <div class="secondary-cards">
                <div class="small-card hotel-card" onclick="navigateTo('hotel.html')"><div class="card-overlay"><h4>Enjoy your Hotel</h4></div></div>
                <div class="small-card menu-card" onclick="navigateTo('menu.html')"><div class="card-overlay"><h4>Menu and services</h4></div></div>
                <div class="small-card discover-card" onclick="navigateTo('discover.html')"><div class="card-overlay"><h4>Discover El Salvador</h4></div></div>
            </div>
            <div class="apps-section">
                <div class="app-icon streamtv"><div class="app-content"><div class="app-title">Stream</div><div class="app-subtitle">TV</div></div></div>
                <div class="app-icon netflix">N</div>
                <div class="app-icon prime">prime video</div>
                <div class="app-icon disney">Disney+</div>
                <div class="app-icon youtube">YouTube</div>
                <div class="app-icon wifi">Wi-Fi</div>
            </div>
        </main>
    </div>
    <script src="scripts/main.js"></script>
</body>
</html>`,
				},
				{
					Name: "flights.html",
					Type: model.FileHTML,
					Path: "/flights.html",
					Content: `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Flight Status</title>
    <link rel="stylesheet" href="styles/main.css">
</head>
<body>
    <div class="tv-interface">
        <header class="header"><h1>Flight status</h1></header>
        <main class="main-content">
            <p>Check your flight status in real time.</p>
            <button class="cta-button" onclick="navigateTo('index.html')">Back</button>
        </main>
    </div>
    <script src="scripts/main.js"></script>
</body>
</html>`,
				},
				{
					Name: "main.css",
					Type: model.FileCSS,
					Path: "/styles/main.css",
					Content: `* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', sans-serif; background: #0a0a0a; color: #fff; }
.tv-interface { width: 100vw; height: 100vh; background-size: cover; background-position: center; }
.header { display: flex; justify-content: space-between; align-items: center; padding: 24px 48px; }
.main-content { padding: 0 48px; }
.card { border-radius: 12px; overflow: hidden; background-size: cover; cursor: pointer; }
.card-overlay { background: linear-gradient(transparent, rgba(0,0,0,0.8)); padding: 16px; }
.apps-section { display: flex; gap: 16px; margin-top: 32px; }
.app-icon { width: 96px; height: 96px; border-radius: 16px; background: #1f1f1f; display: flex; align-items: center; justify-content: center; }
.cta-button { background: #2563eb; color: #fff; border: none; border-radius: 8px; padding: 10px 20px; cursor: pointer; }`,
				},
				{
					Name: "main.js",
					Type: model.FileJS,
					Path: "/scripts/main.js",
					Content: `function navigateTo(page) { window.location.href = page; }
function updateClock() {
    var el = document.getElementById('currentTime');
    if (!el) return;
    var now = new Date();
    el.textContent = now.toLocaleTimeString([], { hour: '2-digit', minute: '2-digit' });
}
setInterval(updateClock, 1000);
updateClock();`,
				},
			},
		},
	}
}
