package catalog

var pillars = []Pillar{
	{Code: "GOV", Name: "Governance & Ownership"},
	{Code: "AST", Name: "Asset Visibility"},
	{Code: "IAM", Name: "Identity & Access Control"},
	{Code: "END", Name: "Endpoint Security"},
	{Code: "PER", Name: "Email & Perimeter Controls"},
	{Code: "BAK", Name: "Backups & Resilience"},
	{Code: "LOG", Name: "Logging & Monitoring"},
	{Code: "IR", Name: "Incident Response & Awareness"},
}

var questions = []Question{
	// GOV
	{ID: "GOV-01", PillarCode: "GOV", PillarName: "Governance & Ownership", Text: "Is there a named person/team accountable for cyber security?", Order: 1},
	{ID: "GOV-02", PillarCode: "GOV", PillarName: "Governance & Ownership", Text: "Does cyber risk get reported to leadership at least quarterly?", Order: 2},
	{ID: "GOV-03", PillarCode: "GOV", PillarName: "Governance & Ownership", Text: "Are basic security policies in place (acceptable use, passwords, remote access, data handling)?", Order: 3},
	{ID: "GOV-04", PillarCode: "GOV", PillarName: "Governance & Ownership", Text: "Is there a known set of top cyber risks (risk register or risk list)?", Order: 4},

	// AST
	{ID: "AST-01", PillarCode: "AST", PillarName: "Asset Visibility", Text: "Do you maintain a list of ICT assets (endpoints/servers/network equipment)?", Order: 1},
	{ID: "AST-02", PillarCode: "AST", PillarName: "Asset Visibility", Text: "Do you know what is public-facing/internet exposed (websites, VPN, email, DNS, hosting)?", Order: 2},
	{ID: "AST-03", PillarCode: "AST", PillarName: "Asset Visibility", Text: "Is there a defined way to track patching of servers/endpoints (even basic)?", Order: 3},
	{ID: "AST-04", PillarCode: "AST", PillarName: "Asset Visibility", Text: "Have you identified which systems are critical to Parliament operations?", Order: 4},

	// IAM
	{ID: "IAM-01", PillarCode: "IAM", PillarName: "Identity & Access Control", Text: "Is MFA enabled for email and remote access for all staff?", Order: 1},
	{ID: "IAM-02", PillarCode: "IAM", PillarName: "Identity & Access Control", Text: "Are admin accounts separated from normal user accounts?", Order: 2},
	{ID: "IAM-03", PillarCode: "IAM", PillarName: "Identity & Access Control", Text: "Are access changes and leavers handled promptly and consistently?", Order: 3},
	{ID: "IAM-04", PillarCode: "IAM", PillarName: "Identity & Access Control", Text: "Are privileged accounts reviewed regularly (at least every 6–12 months)?", Order: 4},

	// END
	{ID: "END-01", PillarCode: "END", PillarName: "Endpoint Security", Text: "Are workstations/laptops centrally managed (Intune/MDM/GPO/standard build)?", Order: 1},
	{ID: "END-02", PillarCode: "END", PillarName: "Endpoint Security", Text: "Is endpoint protection deployed and monitored (Defender, CrowdStrike, Sophos etc.)?", Order: 2},
	{ID: "END-03", PillarCode: "END", PillarName: "Endpoint Security", Text: "Are all portable devices encrypted (BitLocker/FileVault)?", Order: 3},
	{ID: "END-04", PillarCode: "END", PillarName: "Endpoint Security", Text: "Are local admin rights restricted and granted only where necessary?", Order: 4},

	// PER
	{ID: "PER-01", PillarCode: "PER", PillarName: "Email & Perimeter Controls", Text: "Is phishing/spam filtering in place and actively managed?", Order: 1},
	{ID: "PER-02", PillarCode: "PER", PillarName: "Email & Perimeter Controls", Text: "Are SPF + DKIM + DMARC implemented for official Parliament domains?", Order: 2},
	{ID: "PER-03", PillarCode: "PER", PillarName: "Email & Perimeter Controls", Text: "Is remote access protected (VPN or ZTNA + MFA, strong controls)?", Order: 3},
	{ID: "PER-04", PillarCode: "PER", PillarName: "Email & Perimeter Controls", Text: "Is there a managed firewall with change control and basic rule hygiene?", Order: 4},

	// BAK
	{ID: "BAK-01", PillarCode: "BAK", PillarName: "Backups & Resilience", Text: "Are backups in place for critical systems and important data?", Order: 1},
	{ID: "BAK-02", PillarCode: "BAK", PillarName: "Backups & Resilience", Text: "Are restores tested at least annually (or more often)?", Order: 2},
	{ID: "BAK-03", PillarCode: "BAK", PillarName: "Backups & Resilience", Text: "Are backups protected from ransomware (offline/immutable/separate credentials)?", Order: 3},
	{ID: "BAK-04", PillarCode: "BAK", PillarName: "Backups & Resilience", Text: "Is there a basic continuity plan or agreed approach for what matters most during outages?", Order: 4},

	// LOG
	{ID: "LOG-01", PillarCode: "LOG", PillarName: "Logging & Monitoring", Text: "Is there central visibility of security events (SIEM, Defender portal, syslog, alerting)?", Order: 1},
	{ID: "LOG-02", PillarCode: "LOG", PillarName: "Logging & Monitoring", Text: "Is there a defined process/person responsible for responding to alerts?", Order: 2},
	{ID: "LOG-03", PillarCode: "LOG", PillarName: "Logging & Monitoring", Text: "Are key audit logs enabled for identity/email/admin activity?", Order: 3},

	// IR
	{ID: "IR-01", PillarCode: "IR", PillarName: "Incident Response & Awareness", Text: "Is there a basic documented incident response process (even a 1–2 pager)?", Order: 1},
	{ID: "IR-02", PillarCode: "IR", PillarName: "Incident Response & Awareness", Text: "Have you run an incident tabletop exercise in the last 12–18 months?", Order: 2},
	{ID: "IR-03", PillarCode: "IR", PillarName: "Incident Response & Awareness", Text: "Do staff receive security awareness guidance/training at least annually?", Order: 3},
}
