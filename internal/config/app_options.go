package config

// Static application metadata served to the frontend via GET /api/v1/config.
// This mirrors the branding and dropdown options of the assessment UI; it is
// compiled-in and never changes at runtime.

// AppInfo is the application identity block.
type AppInfo struct {
	Title          string `json:"app_title"`
	Subtitle       string `json:"app_subtitle"`
	CompanyName    string `json:"company_name"`
	CompanyTagline string `json:"company_tagline"`
	Version        string `json:"version"`
}

// App returns the application identity.
func App() AppInfo {
	return AppInfo{
		Title:          "Cyber Resilience Maturity Assessment",
		Subtitle:       "Enterprise Cybersecurity Assessment Platform",
		CompanyName:    "SBA Info Solutions",
		CompanyTagline: "Powered by SBA Info Solutions",
		Version:        "1.0.0",
	}
}

// BrandColors is the strict branding palette used by the frontend.
func BrandColors() map[string]string {
	return map[string]string{
		"primary":    "#000000",
		"secondary":  "#e7000b",
		"text":       "#ffffff",
		"background": "#000000",
		"card_bg":    "#1a1a1a",
	}
}

// CompanySizes lists the selectable organization size brackets.
func CompanySizes() []string {
	return []string{
		"1-50 employees",
		"51-200 employees",
		"201-500 employees",
		"501-1000 employees",
		"1001-5000 employees",
		"5000+ employees",
	}
}

// Industries lists the selectable industry sectors.
func Industries() []string {
	return []string{
		"Banking & Financial Services",
		"Insurance",
		"Healthcare",
		"Government",
		"Energy & Utilities",
		"Telecommunications",
		"Manufacturing",
		"Retail & E-commerce",
		"Technology",
		"Transportation & Logistics",
		"Education",
		"Other",
	}
}

// Regions lists the selectable operating regions.
func Regions() []string {
	return []string{
		"India",
		"United States",
		"United Kingdom",
		"Canada",
		"Australia",
		"Singapore",
		"United Arab Emirates",
		"Germany",
		"France",
		"Japan",
		"China",
		"South Korea",
		"Brazil",
		"South Africa",
		"Other - Asia Pacific",
		"Other - Europe",
		"Other - Middle East",
		"Other - Americas",
		"Other - Africa",
	}
}
