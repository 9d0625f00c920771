package fallback

const helloResponse = `💭 **Thinking:** User is initiating conversation. Should provide warm greeting and guide toward project creation.

👋 **Hello! I'm your AI Project Architect!**

I specialize in helping transform ideas into detailed project plans. I can analyze your requirements, suggest architectures, and create comprehensive project blueprints.

**Try me with:** "Create a [your project idea]" or "Build a [specific tool]"`

const hiResponse = `💭 **Analysis:** Casual greeting detected. Should maintain friendly tone while demonstrating capabilities.

👋 **Hi there!** I'm excited to help you bring your project ideas to life!

I can create detailed plans for:
• 🌐 Web applications & platforms
• 📊 Data analysis & visualization tools
• 💬 AI chatbots & assistants
• ⚙️ Automation systems & workflows

**What would you like to build today?**`

const statusResponse = `💭 **Context:** User is checking system status. Should confirm operational status while redirecting to project focus.

🤖 **I'm functioning optimally and ready to architect your next project!**

My systems are:
✅ Project analysis engine: **Online**
✅ Architecture generator: **Active**
✅ Tech stack recommender: **Operational**
✅ Timeline estimator: **Ready**

**What project shall we design together?**`

const projectResponse = `💭 **Analysis:** User mentioned projects. Should provide comprehensive project creation guidance.

💡 **PROJECT CREATION MODE ACTIVATED!**

I can help you design and plan various types of projects:

🌐 **Web Applications**
- E-commerce platforms, SaaS products, portfolios
- *Example: "Create a task management web app"*

📊 **Data Tools**
- Dashboards, analytics platforms, reporting systems
- *Example: "Build a sales data analyzer"*

💬 **AI Assistants**
- Chatbots, customer support agents, virtual assistants
- *Example: "Make a FAQ chatbot for my website"*

⚙️ **Automation Systems**
- Workflow automators, scheduled tasks, integration tools
- *Example: "Develop a social media scheduler"*

**What specific project would you like to create?**`

const createResponse = `💭 **Thinking:** User is interested in creation. Should provide clear examples and encouragement.

🚀 **EXCELLENT! Let's create something amazing together!**

Here's how I can help you:

1. **Describe your idea** in natural language
2. **I'll analyze** requirements and complexity
3. **Generate a blueprint** with features and tech stack
4. **Provide timeline** and development guidance

**Quick Start Examples:**
- "Create a mobile app for fitness tracking"
- "Build a dashboard for website analytics"
- "Make an automation tool for email marketing"
- "Develop a platform for online courses"

**What's your project idea?**`

const capabilitiesResponse = `💭 **Analysis:** User wants to understand capabilities. Should provide comprehensive overview.

🛠️ **I'm a comprehensive Project Design Assistant!**

**MY CAPABILITIES:**

📋 **Project Analysis**
- Requirement extraction from natural language
- Complexity assessment and scope definition
- Domain-specific architecture planning

🔧 **Technical Architecture**
- Technology stack recommendations
- System component identification
- Scalability and security considerations

⏱️ **Project Planning**
- Timeline estimation and milestone planning
- Resource requirement assessment
- Risk identification and mitigation

💡 **Feature Design**
- Core functionality specification
- User experience considerations
- Integration point identification

**Try me with any project idea!**`

const defaultResponse = `💭 **Analysis:** User input doesn't match predefined patterns.
Should provide helpful guidance while demonstrating project creation capabilities.

🔍 **I understand you're looking for assistance.** Let me help you get started!

🎯 **I SPECIALIZE IN PROJECT CREATION & ARCHITECTURE**

**I can help you design:**
• Complete web applications 🌐
• Data analysis platforms 📈
• AI-powered chatbots 🤖
• Automation workflows ⚙️
• Mobile applications 📱
• Game prototypes 🎮

💡 **Simply describe what you want to build:**
- "Create a [your idea]"
- "Build a [specific tool]"
- "I need a [type of application]"

**Example:** "Create a recipe sharing platform with user profiles and ratings"`
