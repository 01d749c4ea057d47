package catalog

// quickWinsLibrary maps question ids to their quick-win recommendation.
// Advisory content only; scoring never depends on it.
var quickWinsLibrary = map[string]Recommendation{
	// GOV
	"GOV-01": {
		Title: "Assign clear cyber accountability",
		ActionSteps: [3]string{
			"Nominate an accountable owner (person or role) for cyber security.",
			"Define responsibilities (policy approvals, risk decisions, reporting cadence).",
			"Schedule a monthly check-in to track progress on actions.",
		},
		WhyItMatters:   "Clear accountability helps prioritise and deliver improvements.",
		SuggestedOwner: "Leadership",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},
	"GOV-02": {
		Title: "Introduce quarterly cyber reporting",
		ActionSteps: [3]string{
			"Create a one-page cyber status report template.",
			"Agree a quarterly reporting cadence with leadership.",
			"Track a small set of metrics and actions to completion.",
		},
		WhyItMatters:   "Regular reporting keeps cyber risk visible and supports timely decisions.",
		SuggestedOwner: "Leadership",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},
	"GOV-03": {
		Title: "Publish core security policies",
		ActionSteps: [3]string{
			"Draft short policies (acceptable use, passwords/MFA, remote access).",
			"Get leadership approval and publish to all staff.",
			"Embed policies into onboarding and annual refresh communications.",
		},
		WhyItMatters:   "Policies set expectations and reduce preventable security incidents.",
		SuggestedOwner: "Leadership",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"GOV-04": {
		Title: "Create a simple cyber risk list",
		ActionSteps: [3]string{
			"List the top risks and their business impact.",
			"Assign an owner and 1–2 actions per risk.",
			"Review the list quarterly and update priorities.",
		},
		WhyItMatters:   "A shared risk list helps focus effort on the highest-impact gaps.",
		SuggestedOwner: "Leadership",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},

	// AST
	"AST-01": {
		Title: "Build an ICT asset register",
		ActionSteps: [3]string{
			"Start with endpoints, servers, and network equipment.",
			"Record owner, location, OS/version, and criticality.",
			"Update monthly and link new purchases to the register.",
		},
		WhyItMatters:   "You cannot protect or patch what you cannot identify.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"AST-02": {
		Title: "Inventory internet-exposed services",
		ActionSteps: [3]string{
			"List public-facing services (websites, VPN, email, DNS, hosting).",
			"Record who patches/owns each service and how access is controlled.",
			"Remove or lock down anything unused.",
		},
		WhyItMatters:   "Public-facing services are common attack paths and need extra control.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},
	"AST-03": {
		Title: "Define a basic patch tracking process",
		ActionSteps: [3]string{
			"Set a monthly patch cadence plus an emergency patch process.",
			"Track patch status for endpoints and servers (even in a spreadsheet).",
			"Report patch compliance and exceptions monthly.",
		},
		WhyItMatters:   "Patch visibility reduces exposure to known exploited vulnerabilities.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"AST-04": {
		Title: "Identify critical systems",
		ActionSteps: [3]string{
			"Agree which systems are essential to Parliament operations.",
			"Tier systems by criticality (critical/important/standard).",
			"Use tiers to prioritise backups, monitoring, and patching.",
		},
		WhyItMatters:   "Criticality guides backup priorities and outage planning.",
		SuggestedOwner: "Leadership",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},

	// IAM
	"IAM-01": {
		Title: "Enable MFA for email and remote access",
		ActionSteps: [3]string{
			"Enable MFA for all staff, prioritising admins and leadership.",
			"Disable legacy authentication where possible.",
			"Track and remediate MFA exceptions until coverage is complete.",
		},
		WhyItMatters:   "MFA reduces account compromise from stolen passwords.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},
	"IAM-02": {
		Title: "Separate admin and user accounts",
		ActionSteps: [3]string{
			"Create separate privileged accounts for administrators.",
			"Require MFA and stronger controls for privileged accounts.",
			"Document when and how privileged access is used and approved.",
		},
		WhyItMatters:   "Admin separation limits damage if a normal account is compromised.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"IAM-03": {
		Title: "Standardise joiner/leaver access changes",
		ActionSteps: [3]string{
			"Create a joiner/leaver checklist and approval flow.",
			"Set an SLA (e.g., leavers disabled within 24 hours).",
			"Keep an auditable record of completion.",
		},
		WhyItMatters:   "Prompt access removal reduces risk from orphaned accounts and unauthorised access.",
		SuggestedOwner: "Service Desk",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},
	"IAM-04": {
		Title: "Schedule privileged access reviews",
		ActionSteps: [3]string{
			"List privileged groups, admins, and service accounts.",
			"Review access at least every 6–12 months with system owners.",
			"Remove unnecessary access and document exceptions.",
		},
		WhyItMatters:   "Regular reviews reduce unnecessary access and misuse risk.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "90+",
	},

	// END
	"END-01": {
		Title: "Standardise endpoint management",
		ActionSteps: [3]string{
			"Define a standard build and baseline configuration.",
			"Use a central management tool to enforce settings and updates.",
			"Reduce unsupported devices and exceptions over time.",
		},
		WhyItMatters:   "Central management enables consistent patching and secure configuration.",
		SuggestedOwner: "ICT Ops",
		Effort:         "High",
		IndicativeCost: "$$",
		Timeframe:      "90+",
	},
	"END-02": {
		Title: "Deploy and monitor endpoint protection",
		ActionSteps: [3]string{
			"Confirm endpoint protection is installed on all devices.",
			"Enable alerting and assign who reviews alerts.",
			"Keep agents up to date and enable tamper protection.",
		},
		WhyItMatters:   "Endpoint protection helps detect and contain malware.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$$",
		Timeframe:      "30-90 days",
	},
	"END-03": {
		Title: "Enable full-disk encryption",
		ActionSteps: [3]string{
			"Enable BitLocker/FileVault (or equivalent) on all laptops.",
			"Store recovery keys securely and test recovery.",
			"Make encryption part of the standard device build.",
		},
		WhyItMatters:   "Encryption reduces data exposure when devices are lost or stolen.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"END-04": {
		Title: "Restrict local admin rights",
		ActionSteps: [3]string{
			"Identify who has local admin and why.",
			"Remove broad admin rights and introduce an exception process.",
			"Use separate admin accounts or time-bound elevation where possible.",
		},
		WhyItMatters:   "Fewer admin rights reduces ransomware spread and accidental changes.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},

	// PER
	"PER-01": {
		Title: "Tune and manage anti-phishing controls",
		ActionSteps: [3]string{
			"Review and enable recommended anti-phishing policies.",
			"Define a process for reported phishing (triage and comms).",
			"Review blocked events and false positives monthly.",
		},
		WhyItMatters:   "Email is a leading entry point for attacks and credential theft.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$$",
		Timeframe:      "30-90 days",
	},
	"PER-02": {
		Title: "Implement SPF, DKIM, and DMARC",
		ActionSteps: [3]string{
			"Publish SPF records and enable DKIM signing.",
			"Enable DMARC monitoring, then progress to quarantine/reject.",
			"Review DMARC reports and fix misaligned senders.",
		},
		WhyItMatters:   "Domain protections reduce spoofing and improve trust in official email.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"PER-03": {
		Title: "Harden remote access",
		ActionSteps: [3]string{
			"Enforce MFA for VPN/remote access and restrict admin access paths.",
			"Limit remote access to required users and review access monthly.",
			"Enable logging and alerts for unusual sign-ins.",
		},
		WhyItMatters:   "Remote access is a high-value target and needs strong protection.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$$",
		Timeframe:      "0-30 days",
	},
	"PER-04": {
		Title: "Apply basic firewall rule hygiene",
		ActionSteps: [3]string{
			"Review inbound rules and remove anything unused or overly broad.",
			"Implement change control for firewall changes (who/why/when).",
			"Restrict management access and keep firmware up to date.",
		},
		WhyItMatters:   "Good rule hygiene reduces exposure and misconfiguration risk.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$$",
		Timeframe:      "30-90 days",
	},

	// BAK
	"BAK-01": {
		Title: "Ensure backups for critical systems",
		ActionSteps: [3]string{
			"Confirm critical systems are backed up and schedules are documented.",
			"Define retention and recovery objectives for key services.",
			"Enable alerts for failed backup jobs.",
		},
		WhyItMatters:   "Backups are essential for recovery from ransomware and outages.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$$",
		Timeframe:      "0-30 days",
	},
	"BAK-02": {
		Title: "Test restores on a schedule",
		ActionSteps: [3]string{
			"Perform a restore test for at least one system or dataset.",
			"Document the steps, time taken, and issues found.",
			"Schedule repeat tests and track improvements.",
		},
		WhyItMatters:   "Restore testing confirms backups work when needed.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"BAK-03": {
		Title: "Protect backups from ransomware",
		ActionSteps: [3]string{
			"Use separate credentials and restrict admin access to backup systems.",
			"Add offline or immutable backup copies for critical data.",
			"Enable alerts for deletion attempts and unusual access.",
		},
		WhyItMatters:   "Protected backups prevent attackers from removing recovery options.",
		SuggestedOwner: "ICT Ops",
		Effort:         "High",
		IndicativeCost: "$$",
		Timeframe:      "90+",
	},
	"BAK-04": {
		Title: "Create a basic continuity approach",
		ActionSteps: [3]string{
			"Agree the top services and processes to restore first.",
			"Document roles, contacts, and decision points.",
			"Run a short walkthrough to validate and update.",
		},
		WhyItMatters:   "Continuity planning reduces downtime and confusion during outages.",
		SuggestedOwner: "Leadership",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},

	// LOG
	"LOG-01": {
		Title: "Centralise security event visibility",
		ActionSteps: [3]string{
			"Identify key log sources (identity, email, endpoints, firewall).",
			"Enable central access/collection and basic alerting.",
			"Define who reviews alerts and how escalations work.",
		},
		WhyItMatters:   "Visibility enables faster detection and response.",
		SuggestedOwner: "ICT Ops",
		Effort:         "High",
		IndicativeCost: "$$",
		Timeframe:      "90+",
	},
	"LOG-02": {
		Title: "Assign alert triage ownership",
		ActionSteps: [3]string{
			"Assign a primary and backup person for alert review.",
			"Create response steps for common alerts.",
			"Agree escalation paths for major incidents.",
		},
		WhyItMatters:   "Clear responsibility prevents missed alerts and delays.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},
	"LOG-03": {
		Title: "Enable key audit logging",
		ActionSteps: [3]string{
			"Enable audit logs for identity, email, and admin activity.",
			"Set retention suitable for investigations.",
			"Confirm logs are searchable during incidents.",
		},
		WhyItMatters:   "Audit logs support investigations and detection of unauthorised activity.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Med",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},

	// IR
	"IR-01": {
		Title: "Document a basic incident response process",
		ActionSteps: [3]string{
			"Write a short playbook: detect, contain, recover, and report.",
			"Define roles, contacts, and communications channels.",
			"Store it where it is accessible during outages.",
		},
		WhyItMatters:   "A basic playbook reduces confusion and speeds response.",
		SuggestedOwner: "ICT Ops",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "0-30 days",
	},
	"IR-02": {
		Title: "Run an incident tabletop exercise",
		ActionSteps: [3]string{
			"Pick a scenario and hold a 60-minute tabletop session.",
			"Walk through actions, communications, and decisions.",
			"Capture improvements and assign owners and dates.",
		},
		WhyItMatters:   "Exercises reveal gaps and build confidence in escalation paths.",
		SuggestedOwner: "Leadership",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
	"IR-03": {
		Title: "Deliver annual security awareness guidance",
		ActionSteps: [3]string{
			"Share a short training/briefing on phishing and safe practices.",
			"Define a single reporting path for suspicious emails/incidents.",
			"Repeat annually and after major incidents.",
		},
		WhyItMatters:   "Awareness reduces phishing success and improves reporting.",
		SuggestedOwner: "Leadership",
		Effort:         "Low",
		IndicativeCost: "$",
		Timeframe:      "30-90 days",
	},
}
