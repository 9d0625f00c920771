// Package catalogue holds the static project templates keyed by project type.
package catalogue

import "github.com/GoSim-25-26J-441/archbot-backend/internal/blueprint/domain"

var templates = map[domain.ProjectType]domain.ProjectTemplate{
	domain.WebApp: {
		Name:        "Web Application",
		Description: "A full-stack web application",
		Features: []string{
			"Responsive design for all devices",
			"User authentication and authorization",
			"RESTful API architecture",
			"Database integration and management",
			"Modern UI/UX design principles",
		},
		Technologies: []string{"React/Vue.js", "Node.js/Python", "MongoDB/PostgreSQL", "Docker"},
		Components:   []string{"Frontend UI", "Backend API", "Database Layer", "Authentication System"},
		Complexity:   domain.ComplexityMedium,
		Timeline:     "6-12 weeks",
	},
	domain.DataAnalysis: {
		Name:        "Data Analysis Tool",
		Description: "A comprehensive data analysis and visualization platform",
		Features: []string{
			"Interactive data visualization",
			"Real-time analytics dashboard",
			"Data import/export capabilities",
			"Custom report generation",
			"Predictive analytics features",
		},
		Technologies: []string{"Python/Pandas", "React/D3.js", "SQL Database", "Jupyter"},
		Components:   []string{"Data Processing Engine", "Visualization Dashboard", "Report Generator", "Data Storage"},
		Complexity:   domain.ComplexityMedium,
		Timeline:     "4-8 weeks",
	},
	domain.Chatbot: {
		Name:        "AI Chatbot",
		Description: "An intelligent conversational AI assistant",
		Features: []string{
			"Natural language understanding",
			"Multi-platform integration",
			"Context-aware conversations",
			"Admin management dashboard",
			"Analytics and reporting",
		},
		Technologies: []string{"Python/FastAPI", "React Native", "OpenAI API", "Redis"},
		Components:   []string{"NLU Engine", "Dialog Manager", "API Gateway", "User Interface"},
		Complexity:   domain.ComplexityHigh,
		Timeline:     "8-16 weeks",
	},
	domain.AutomationAgent: {
		Name:        "Automation System",
		Description: "An intelligent workflow automation platform",
		Features: []string{
			"Task scheduling and management",
			"API integration capabilities",
			"Error handling and logging",
			"Real-time monitoring",
			"Custom workflow creation",
		},
		Technologies: []string{"Python", "Celery", "Redis", "FastAPI"},
		Components:   []string{"Scheduler", "Task Runner", "Monitoring System", "User Dashboard"},
		Complexity:   domain.ComplexityMedium,
		Timeline:     "4-10 weeks",
	},
	domain.MobileApp: {
		Name:        "Mobile Application",
		Description: "A cross-platform mobile application",
		Features: []string{
			"Cross-platform compatibility",
			"Offline functionality",
			"Push notifications",
			"Native performance",
			"Cloud synchronization",
		},
		Technologies: []string{"React Native/Flutter", "Firebase", "REST APIs", "Redux"},
		Components:   []string{"Mobile UI", "Backend API", "Database", "Authentication"},
		Complexity:   domain.ComplexityHigh,
		Timeline:     "10-20 weeks",
	},
	domain.CustomType: {
		Name:        "Custom Project",
		Description: "A tailored solution based on your requirements",
		Features: []string{
			"Custom architecture design",
			"Scalable infrastructure",
			"Comprehensive documentation",
			"Testing and quality assurance",
		},
		Technologies: []string{"Python/JavaScript", "Cloud Services", "Database", "API Framework"},
		Components:   []string{"Core Module", "User Interface", "Data Layer", "Integration Layer"},
		Complexity:   domain.ComplexityMedium,
		Timeline:     "6-12 weeks",
	},
}

var nameSuffixes = map[domain.ProjectType]string{
	domain.WebApp:          "Web Application",
	domain.DataAnalysis:    "Data Analysis Platform",
	domain.Chatbot:         "AI Assistant",
	domain.AutomationAgent: "Automation System",
	domain.MobileApp:       "Mobile App",
	domain.CustomType:      "Project",
}

// Lookup returns the template for t. Unknown types resolve to the custom
// template, so the lookup never fails. The returned slices are copies.
func Lookup(t domain.ProjectType) domain.ProjectTemplate {
	tpl, ok := templates[t]
	if !ok {
		tpl = templates[domain.CustomType]
	}
	return clone(tpl)
}

// Types returns the catalogue keys in catalogue order.
func Types() []domain.ProjectType {
	out := make([]domain.ProjectType, len(domain.AllTypes))
	copy(out, domain.AllTypes)
	return out
}

// NameSuffix is the noun phrase appended to generated project names.
func NameSuffix(t domain.ProjectType) string {
	if s, ok := nameSuffixes[t]; ok {
		return s
	}
	return "Solution"
}

func clone(tpl domain.ProjectTemplate) domain.ProjectTemplate {
	tpl.Features = append([]string(nil), tpl.Features...)
	tpl.Technologies = append([]string(nil), tpl.Technologies...)
	tpl.Components = append([]string(nil), tpl.Components...)
	return tpl
}

var examplePrompts = []string{
	"Create a web application for task management",
	"Build a data analysis agent for sales data",
	"I need a chatbot for customer support",
	"Develop an automation agent for social media posting",
}

// ExamplePrompts are the sample requests shown to new users.
func ExamplePrompts() []string {
	return append([]string(nil), examplePrompts...)
}
