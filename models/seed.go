package models

// 初始种子数据。首次启动或重置时使用，永远返回副本，调用方可以随意修改。

// SeedLeads 返回各阶段的初始线索数据
func SeedLeads() LeadsByStage {
	return LeadsByStage{
		Tofu: []TofuLead{
			{
				LeadBase: LeadBase{
					ID: 1, Name: "Sarah Johnson", Email: "sarah.johnson@techcorp.com",
					Company: "TechCorp Solutions", Title: "Marketing Director",
					Source: "Website Form", Status: TofuStatusNew,
					LastActivity: "Downloaded whitepaper", CreatedDate: "2024-01-15",
					Phone: "+1 415-555-0132", Industry: "Technology", CompanySize: "201-500",
				},
				ContentDownloaded: "Digital Marketing Guide",
			},
			{
				LeadBase: LeadBase{
					ID: 2, Name: "Michael Chen", Email: "m.chen@innovatech.io",
					Company: "InnovaTech", Title: "Growth Manager",
					Source: "LinkedIn Campaign", Status: TofuStatusEngaged,
					LastActivity: "Opened 3 emails", CreatedDate: "2024-01-18",
					Phone: "+1 206-555-0178", Industry: "SaaS", CompanySize: "51-200",
				},
				ContentDownloaded: "SEO Checklist 2024",
			},
			{
				LeadBase: LeadBase{
					ID: 3, Name: "Emma Rodriguez", Email: "emma.r@retailplus.com",
					Company: "RetailPlus", Title: "E-commerce Lead",
					Source: "Webinar", Status: TofuStatusWarm,
					LastActivity: "Attended webinar", CreatedDate: "2024-01-22",
					Phone: "+1 312-555-0119", Industry: "Retail", CompanySize: "501-1000",
				},
				ContentDownloaded: "Conversion Rate Playbook",
			},
			{
				LeadBase: LeadBase{
					ID: 4, Name: "David Park", Email: "dpark@finedge.co",
					Company: "FinEdge", Title: "VP Marketing",
					Source: "Referral", Status: TofuStatusHot,
					LastActivity: "Requested pricing info", CreatedDate: "2024-01-25",
					Phone: "+1 646-555-0145", Industry: "Fintech", CompanySize: "11-50",
				},
				ContentDownloaded: "Marketing Automation Intro",
			},
		},
		Mofu: []MofuLead{
			{
				LeadBase: LeadBase{
					ID: 101, Name: "Lisa Thompson", Email: "lisa.t@cloudnine.com",
					Company: "CloudNine Systems", Title: "CMO",
					Source: "Website Form", Status: MofuStatusMQL,
					LastActivity: "Completed product tour", CreatedDate: "2024-01-10",
					Phone: "+1 408-555-0161", Industry: "Cloud Services", CompanySize: "201-500",
				},
				LeadScore: 78, ContentConsumed: "Case Study, Product Tour", ConvertingTime: 72,
			},
			{
				LeadBase: LeadBase{
					ID: 102, Name: "James Wilson", Email: "jwilson@medicore.health",
					Company: "MediCore Health", Title: "Digital Strategy Lead",
					Source: "Google Ads", Status: MofuStatusSQL,
					LastActivity: "Booked discovery call", CreatedDate: "2024-01-12",
					Phone: "+1 617-555-0183", Industry: "Healthcare", CompanySize: "1001-5000",
				},
				LeadScore: 85, ContentConsumed: "ROI Calculator, Webinar", ConvertingTime: 96,
			},
			{
				LeadBase: LeadBase{
					ID: 103, Name: "Ana Oliveira", Email: "ana.o@logiflow.com",
					Company: "LogiFlow", Title: "Head of Demand Gen",
					Source: "Content Syndication", Status: MofuStatusOpportunity,
					LastActivity: "Replied to nurture email", CreatedDate: "2024-01-14",
					Phone: "+1 305-555-0127", Industry: "Logistics", CompanySize: "51-200",
				},
				LeadScore: 81, ContentConsumed: "Comparison Guide", ConvertingTime: 120,
			},
		},
		Bofu: []BofuLead{
			{
				LeadBase: LeadBase{
					ID: 201, Name: "Robert Kim", Email: "robert.kim@enterpriseone.com",
					Company: "EnterpriseOne", Title: "Director of Operations",
					Source: "Outbound", Status: BofuStatusNegotiation,
					LastActivity: "Reviewed contract draft", CreatedDate: "2023-12-28",
					Phone: "+1 212-555-0190", Industry: "Enterprise Software", CompanySize: "1001-5000",
				},
				DealValue: 145500, LeadScore: 92, SalesStage: "Contract Review",
				CloseProbability: 85, ContentConsumed: "Demo, Proposal, Security Review",
				ConvertingTime: 168,
			},
			{
				LeadBase: LeadBase{
					ID: 202, Name: "Sophie Martin", Email: "s.martin@brightwave.fr",
					Company: "BrightWave", Title: "Procurement Manager",
					Source: "Partner Referral", Status: BofuStatusProposal,
					LastActivity: "Requested proposal revision", CreatedDate: "2024-01-05",
					Phone: "+33 1 55 55 01 44", Industry: "Media", CompanySize: "201-500",
				},
				DealValue: 62000, LeadScore: 88, SalesStage: "Proposal Sent",
				CloseProbability: 70, ContentConsumed: "Demo, Proposal",
				ConvertingTime: 144,
			},
			{
				LeadBase: LeadBase{
					ID: 203, Name: "Carlos Mendez", Email: "cmendez@agrotech.mx",
					Company: "AgroTech MX", Title: "CEO",
					Source: "Trade Show", Status: BofuStatusOpportunity,
					LastActivity: "Scheduled final demo", CreatedDate: "2024-01-08",
					Phone: "+52 55 5555 0177", Industry: "Agriculture", CompanySize: "51-200",
				},
				DealValue: 38000, LeadScore: 83, SalesStage: "Qualification",
				CloseProbability: 60, ContentConsumed: "Demo",
				ConvertingTime: 200,
			},
		},
		Cold: []ColdLead{
			{
				LeadBase: LeadBase{
					ID: 301, Name: "Nina Petrova", Email: "nina.p@urbanbuild.com",
					Company: "UrbanBuild", Title: "Marketing Manager",
					Source: "Website Form", Status: ColdStatusDefault,
					LastActivity: "No response to follow-ups", CreatedDate: "2023-11-20",
					Phone: "+1 702-555-0155", Industry: "Construction", CompanySize: "201-500",
					MovedDate: "2024-01-02", OriginalStage: "MOFU",
				},
				Value: 45000, Stage: "MOFU", DaysInactive: 34,
			},
			{
				LeadBase: LeadBase{
					ID: 302, Name: "Tom Becker", Email: "t.becker@swiftship.de",
					Company: "SwiftShip", Title: "COO",
					Source: "Outbound", Status: ColdStatusDefault,
					LastActivity: "Deal stalled after demo", CreatedDate: "2023-10-15",
					Phone: "+49 30 555501 88", Industry: "Logistics", CompanySize: "501-1000",
					MovedDate: "2023-12-18", OriginalStage: "BOFU",
				},
				Value: 98000, Stage: "BOFU", DaysInactive: 49,
			},
		},
	}
}

// SeedCustomers 返回初始客户数据（来源于项目数据集的固定快照）
func SeedCustomers() []Customer {
	return []Customer{
		{
			ID: "CUST-900101", FirstName: "Grace", LastName: "Hall",
			Email: "grace.hall@novaretail.com", Phone: "+1 503-555-0112",
			Status: CustomerStatusActive, Tier: TierGold,
			RegistrationDate: "2023-09-14", LastLogin: "2024-01-28",
			TotalSpent: 27300, OrderCount: 4, LifetimeValue: 91000,
			Location: "Portland, OR", Source: "Website Form",
			Segment: SegmentHighValue,
			Tags:    []string{"Repeat Buyer", "Retail"},
		},
		{
			ID: "CUST-900102", FirstName: "Victor", LastName: "Nguyen",
			Email: "v.nguyen@pacificlabs.io", Phone: "+1 858-555-0139",
			Status: CustomerStatusActive, Tier: TierSilver,
			RegistrationDate: "2023-11-02", LastLogin: "2024-01-25",
			TotalSpent: 9600, OrderCount: 2, LifetimeValue: 32000,
			Location: "San Diego, CA", Source: "Partner Referral",
			Segment: SegmentRegular,
			Tags:    []string{"New Customer", "SaaS"},
		},
	}
}
