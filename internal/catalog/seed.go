package catalog

import "pcblab/internal/models"

// Seed data shipped with the engine. Every accessor returns a fresh deep copy
// so callers can never alter the compiled-in collections.

func seedListings() []models.ComponentListing {
	return []models.ComponentListing{
		{
			Component: models.ComponentRecord{
				ID:           "1",
				PartNumber:   "ATmega328P-PU",
				Description:  "8-bit AVR Microcontroller, 32KB Flash, 28-pin PDIP",
				Manufacturer: "Microchip Technology",
				Category:     models.CategoryMicrocontrollers,
				PackageType:  "PDIP-28",
				Specifications: []string{
					"Flash Memory: 32KB",
					"SRAM: 2KB",
					"EEPROM: 1KB",
					"Operating Voltage: 1.8-5.5V",
					"Max Frequency: 20MHz",
				},
				DatasheetURL: "https://example.com/atmega328p-datasheet.pdf",
			},
			Offers: []models.SupplierOffer{
				{ID: "1", SupplierName: "Digi-Key Electronics", Price: 2.45, Currency: "USD", StockQuantity: 15420, LeadTime: "1-2 days", MinimumOrderQuantity: 1, Rating: 4.9, Verified: true, Location: "USA", WebsiteURL: "https://digikey.com"},
				{ID: "2", SupplierName: "Mouser Electronics", Price: 2.38, Currency: "USD", StockQuantity: 8750, LeadTime: "1-3 days", MinimumOrderQuantity: 1, Rating: 4.8, Verified: true, Location: "USA", WebsiteURL: "https://mouser.com"},
				{ID: "3", SupplierName: "Arrow Electronics", Price: 2.52, Currency: "USD", StockQuantity: 12300, LeadTime: "2-4 days", MinimumOrderQuantity: 10, Rating: 4.7, Verified: true, Location: "Global", WebsiteURL: "https://arrow.com"},
			},
		},
		{
			Component: models.ComponentRecord{
				ID:           "2",
				PartNumber:   "LM7805CT",
				Description:  "5V Positive Voltage Regulator, 1A, TO-220",
				Manufacturer: "STMicroelectronics",
				Category:     models.CategoryVoltageRegulators,
				PackageType:  "TO-220",
				Specifications: []string{
					"Output Voltage: 5V",
					"Output Current: 1A",
					"Input Voltage: 7-25V",
					"Line Regulation: 4mV",
					"Load Regulation: 25mV",
				},
			},
			Offers: []models.SupplierOffer{
				{ID: "4", SupplierName: "Newark", Price: 0.89, Currency: "USD", StockQuantity: 25600, LeadTime: "1-2 days", MinimumOrderQuantity: 1, Rating: 4.6, Verified: true, Location: "USA", WebsiteURL: "https://newark.com"},
				{ID: "5", SupplierName: "RS Components", Price: 0.92, Currency: "USD", StockQuantity: 18900, LeadTime: "2-3 days", MinimumOrderQuantity: 5, Rating: 4.5, Verified: true, Location: "UK", WebsiteURL: "https://rs-online.com"},
			},
		},
		{
			Component: models.ComponentRecord{
				ID:           "3",
				PartNumber:   "ESP32-WROOM-32",
				Description:  "WiFi + Bluetooth Module, PCB Antenna",
				Manufacturer: "Espressif Systems",
				Category:     models.CategoryRFModules,
				PackageType:  "SMD",
				Specifications: []string{
					"CPU: Dual-core Xtensa 32-bit",
					"Flash: 4MB",
					"SRAM: 520KB",
					"WiFi: 802.11 b/g/n",
					"Bluetooth: v4.2 BR/EDR and BLE",
				},
			},
			Offers: []models.SupplierOffer{
				{ID: "6", SupplierName: "Adafruit", Price: 3.95, Currency: "USD", StockQuantity: 890, LeadTime: "3-5 days", MinimumOrderQuantity: 1, Rating: 4.8, Verified: true, Location: "USA", WebsiteURL: "https://adafruit.com"},
				{ID: "7", SupplierName: "SparkFun", Price: 4.25, Currency: "USD", StockQuantity: 1240, LeadTime: "2-4 days", MinimumOrderQuantity: 1, Rating: 4.7, Verified: true, Location: "USA", WebsiteURL: "https://sparkfun.com"},
			},
		},
	}
}

func seedPCBRecords() []models.PCBRecord {
	return []models.PCBRecord{
		{ID: "1", Model: "Arduino Uno R3", Manufacturer: "Arduino", Category: "Development Board", CommonFaultsCount: 12, SuccessRate: 94.2, LastUpdated: "2024-01-15", Description: "Popular microcontroller development board based on ATmega328P", Status: models.PCBStatusActive},
		{ID: "2", Model: "Raspberry Pi 4B", Manufacturer: "Raspberry Pi Foundation", Category: "Single Board Computer", CommonFaultsCount: 8, SuccessRate: 97.8, LastUpdated: "2024-01-14", Description: "High-performance single-board computer with ARM Cortex-A72", Status: models.PCBStatusPriority},
		{ID: "3", Model: "ESP32-DevKitC", Manufacturer: "Espressif", Category: "WiFi Module", CommonFaultsCount: 15, SuccessRate: 89.6, LastUpdated: "2024-01-13", Description: "Wi-Fi and Bluetooth development board", Status: models.PCBStatusActive},
		{ID: "4", Model: "STM32F407G-DISC1", Manufacturer: "STMicroelectronics", Category: "Discovery Board", CommonFaultsCount: 6, SuccessRate: 96.4, LastUpdated: "2024-01-12", Description: "ARM Cortex-M4 based discovery board", Status: models.PCBStatusArchived},
	}
}

// PCBCategories lists the board categories offered by the database filter.
var PCBCategories = []string{"Development Board", "Single Board Computer", "WiFi Module", "Discovery Board"}

func seedFaultPatterns() []models.FaultPattern {
	return []models.FaultPattern{
		{ID: "1", Title: "Power Regulator Failure", PCBModel: "Arduino Uno R3", Frequency: 23, Severity: models.SeverityHigh,
			Symptoms: []string{"No power LED", "5V rail missing", "USB not recognized"},
			Solution: "Replace LM7805 voltage regulator and check input capacitors"},
		{ID: "2", Title: "Crystal Oscillator Issue", PCBModel: "ESP32-DevKitC", Frequency: 18, Severity: models.SeverityMedium,
			Symptoms: []string{"Boot loop", "WiFi connection fails", "Unstable operation"},
			Solution: "Check 40MHz crystal and load capacitors, verify grounding"},
		{ID: "3", Title: "USB Controller Malfunction", PCBModel: "Arduino Uno R3", Frequency: 15, Severity: models.SeverityMedium,
			Symptoms: []string{"Computer not recognizing device", "Upload failures"},
			Solution: "Replace ATmega16U2 USB controller, check USB connector"},
		{ID: "4", Title: "SD Card Slot Corruption", PCBModel: "Raspberry Pi 4B", Frequency: 12, Severity: models.SeverityCritical,
			Symptoms: []string{"Boot failure", "File system errors", "Card not detected"},
			Solution: "Clean SD slot contacts, check power supply stability"},
	}
}

func seedTools() []models.ToolDescriptor {
	return []models.ToolDescriptor{
		{ID: ToolOhmCalculator, Name: "Resistance Calculator", Description: "Calculate resistance, voltage, and current using Ohm's law", Icon: "calculator", Color: "#10B981", Category: models.ToolCategoryCalculators},
		{ID: ToolTraceAnalyzer, Name: "PCB Trace Analyzer", Description: "Analyze and document PCB trace patterns", Icon: "activity", Color: "#0066CC", Category: models.ToolCategoryAnalysis,
			Features: []string{
				"Automatic trace width measurement",
				"Via detection and classification",
				"Layer separation analysis",
				"Impedance calculation",
				"Export to CAD formats",
			}},
		{ID: ToolCrossReference, Name: "Component Cross-Reference", Description: "Find equivalent components and alternatives", Icon: "cpu", Color: "#F59E0B", Category: models.ToolCategoryReference},
		{ID: "power-calculator", Name: "Power Calculator", Description: "Calculate power consumption and efficiency", Icon: "battery", Color: "#EF4444", Category: models.ToolCategoryCalculators},
		{ID: "gerber-viewer", Name: "Gerber File Viewer", Description: "View and analyze Gerber manufacturing files", Icon: "file-text", Color: "#8B5CF6", Category: models.ToolCategoryFiles},
		{ID: ToolBOMGenerator, Name: "BOM Generator", Description: "Generate Bill of Materials from PCB analysis", Icon: "clipboard", Color: "#06B6D4", Category: models.ToolCategoryDocumentation},
		{ID: "thermal-analyzer", Name: "Thermal Analysis", Description: "Analyze heat distribution and thermal performance", Icon: "thermometer", Color: "#F97316", Category: models.ToolCategoryAnalysis},
		{ID: "signal-integrity", Name: "Signal Integrity Check", Description: "Analyze signal quality and interference", Icon: "bar-chart", Color: "#84CC16", Category: models.ToolCategoryAnalysis},
		{ID: "export-tools", Name: "Export Tools", Description: "Export analysis results and documentation", Icon: "share", Color: "#6366F1", Category: models.ToolCategoryExport},
	}
}

func seedAnalyses() []models.ComponentAnalysis {
	return []models.ComponentAnalysis{
		{ID: "1", Name: "ATmega328P", Type: "Microcontroller", Status: models.AnalysisHealthy, Confidence: 98.2, Location: models.BoardLocation{X: 45, Y: 60}, Specs: "TQFP-32, 16MHz, Flash: 32KB"},
		{ID: "2", Name: "C1 - 100µF", Type: "Capacitor", Status: models.AnalysisWarning, Confidence: 76.4, Location: models.BoardLocation{X: 25, Y: 35}, Specs: "Electrolytic, 25V, ESR: High"},
		{ID: "3", Name: "R4 - 10kΩ", Type: "Resistor", Status: models.AnalysisFaulty, Confidence: 94.7, Location: models.BoardLocation{X: 70, Y: 25}, Specs: "1206, 5%, Measured: 15.2kΩ"},
		{ID: "4", Name: "U2 - LM7805", Type: "Voltage Regulator", Status: models.AnalysisHealthy, Confidence: 99.1, Location: models.BoardLocation{X: 15, Y: 80}, Specs: "TO-220, 5V, 1A"},
	}
}

func seedBlocks() []models.FunctionalBlock {
	return []models.FunctionalBlock{
		{ID: "1", Name: "Power Supply", Components: 8, Status: models.BlockOperational, Icon: "battery"},
		{ID: "2", Name: "Microcontroller", Components: 12, Status: models.BlockDegraded, Icon: "cpu"},
		{ID: "3", Name: "Communication", Components: 6, Status: models.BlockOperational, Icon: "wifi"},
		{ID: "4", Name: "Audio", Components: 4, Status: models.BlockFailed, Icon: "volume"},
	}
}

func seedPlans() []models.PricingPlan {
	return []models.PricingPlan{
		{
			ID: "basic", Name: "Basic Plan", Price: "€99", Period: "/month",
			Description: "Perfect for small businesses and individual projects",
			Features: []string{
				"Up to 10 PCB analyses per month",
				"Basic AI diagnostics",
				"Email support",
				"Standard turnaround (48h)",
				"Basic reporting",
				"Component identification",
				"Mobile app access",
			},
			Color: "#6B7280",
		},
		{
			ID: "professional", Name: "Professional Plan", Price: "€299", Period: "/month",
			Description: "Ideal for growing companies and regular projects",
			Features: []string{
				"Up to 50 PCB analyses per month",
				"Advanced AI diagnostics",
				"Priority support",
				"Fast turnaround (24h)",
				"Detailed reporting",
				"Component sourcing assistance",
				"API access",
				"Custom integrations",
				"Dedicated account manager",
			},
			Popular: true,
			Color:   "#0066CC",
		},
		{
			ID: "enterprise", Name: "Enterprise Plan", Price: "€799", Period: "/month",
			Description: "For large organizations with high-volume needs",
			Features: []string{
				"Unlimited PCB analyses",
				"Full AI suite access",
				"24/7 premium support",
				"Express turnaround (12h)",
				"Advanced analytics",
				"Custom AI model training",
				"On-site consultation",
				"White-label solutions",
				"SLA guarantees",
				"Bulk pricing discounts",
			},
			Color: "#10B981",
		},
	}
}

func seedServices() []models.Service {
	return []models.Service{
		{
			ID: "pcb-repair", Title: "PCB Repair & Refurbishment", Price: "From €45", Icon: "wrench", Color: "#0066CC",
			Description: "Professional repair services for damaged or faulty PCBs with guaranteed quality and fast turnaround times.",
			Features: []string{
				"Component-level repair",
				"Trace reconstruction",
				"Via repair and replacement",
				"Conformal coating removal/application",
				"BGA rework and reballing",
				"Quality testing and validation",
			},
		},
		{
			ID: "ai-analysis", Title: "AI-Powered Analysis", Price: "From €25", Icon: "cpu", Color: "#10B981",
			Description: "Cutting-edge artificial intelligence solutions for automated PCB inspection and fault detection.",
			Features: []string{
				"Automated component identification",
				"Defect detection and classification",
				"Predictive failure analysis",
				"Performance optimization recommendations",
				"Real-time monitoring solutions",
				"Custom AI model development",
			},
		},
		{
			ID: "reverse-engineering", Title: "Reverse Engineering", Price: "From €150", Icon: "microscope", Color: "#F59E0B",
			Description: "Complete reverse engineering services for legacy PCBs and electronic systems.",
			Features: []string{
				"Schematic recreation",
				"BOM generation",
				"Gerber file creation",
				"Component cross-referencing",
				"Documentation creation",
				"Manufacturing support",
			},
		},
	}
}

func seedContact() models.ContactInfo {
	return models.ContactInfo{
		Email:    "info@electronicslab.eu",
		Phone:    "+38760308000",
		Website:  "https://electronicslab.eu",
		Location: "Sarajevo, BiH",
	}
}
