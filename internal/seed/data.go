package seed

import "airops/internal/model"

type fields = map[string]any

var records = map[string][]model.Record{
	"flights": {
		{ID: "FL001", Fields: fields{"flightNumber": "AO1024", "origin": "GRU", "destination": "LIS", "departure": "2024-03-15 22:10", "arrival": "2024-03-16 11:45", "aircraft": "PR-AOA", "status": "scheduled", "gate": "B12", "passengers": 268.0, "captain": "João Silva", "firstOfficer": "Maria Santos", "cabinCrew": "Ana Costa, Rita Lopes"}},
		{ID: "FL002", Fields: fields{"flightNumber": "AO2210", "origin": "GIG", "destination": "GRU", "departure": "2024-03-15 08:30", "arrival": "2024-03-15 09:35", "aircraft": "PR-AOC", "status": "departed", "gate": "A03", "passengers": 162.0, "captain": "Pedro Marques", "firstOfficer": "Lucas Pereira", "cabinCrew": "Bruna Alves"}},
		{ID: "FL003", Fields: fields{"flightNumber": "AO3305", "origin": "BSB", "destination": "MIA", "departure": "2024-03-15 13:05", "arrival": "2024-03-15 20:50", "aircraft": "PR-AOB", "status": "delayed", "gate": "C07", "passengers": 241.0, "captain": "Carlos Mendes", "firstOfficer": "Fernanda Rocha", "cabinCrew": "Ana Costa"}},
		{ID: "FL004", Fields: fields{"flightNumber": "AO0450", "origin": "GRU", "destination": "EZE", "departure": "2024-03-15 17:40", "arrival": "2024-03-15 20:55", "aircraft": "PR-AOD", "status": "boarding", "gate": "B04", "passengers": 150.0, "captain": "João Silva", "firstOfficer": "Lucas Pereira", "cabinCrew": "Rita Lopes"}},
		{ID: "FL005", Fields: fields{"flightNumber": "AO7781", "origin": "SSA", "destination": "REC", "departure": "2024-03-15 06:15", "arrival": "2024-03-15 07:40", "aircraft": "PR-AOE", "status": "cancelled", "gate": "D01", "passengers": 0.0}},
		{ID: "FL006", Fields: fields{"flightNumber": "AO1990", "origin": "LIS", "destination": "GRU", "departure": "2024-03-14 23:55", "arrival": "2024-03-15 07:20", "aircraft": "PR-AOA", "status": "landed", "gate": "E02", "passengers": 274.0, "captain": "Carlos Mendes", "firstOfficer": "Maria Santos", "cabinCrew": "Bruna Alves"}},
	},
	"crew": {
		{ID: "1", Fields: fields{"name": "João Silva", "role": "pilot", "base": "GRU", "flightHours": 12450.0, "status": "active", "license": "ATPL-BR-88231", "typeRatings": "A330, B787", "medicalExpiry": "2024-11-30", "nextDuty": "AO1024"}},
		{ID: "2", Fields: fields{"name": "Maria Santos", "role": "copilot", "base": "GRU", "flightHours": 4320.0, "status": "active", "license": "CPL-BR-55120", "typeRatings": "A330", "medicalExpiry": "2025-02-14", "nextDuty": "AO1024"}},
		{ID: "3", Fields: fields{"name": "Ana Costa", "role": "attendant", "base": "BSB", "flightHours": 2870.0, "status": "active", "license": "CCA-33410", "medicalExpiry": "2024-09-01", "nextDuty": "AO3305"}},
		{ID: "4", Fields: fields{"name": "Pedro Marques", "role": "pilot", "base": "GIG", "flightHours": 9800.0, "status": "off-duty", "license": "ATPL-BR-70112", "typeRatings": "E195, A320", "medicalExpiry": "2024-07-22"}},
		{ID: "5", Fields: fields{"name": "Lucas Pereira", "role": "copilot", "base": "GIG", "flightHours": 2100.0, "status": "training", "license": "CPL-BR-61877", "typeRatings": "A320", "medicalExpiry": "2025-05-03"}},
		{ID: "6", Fields: fields{"name": "Rita Lopes", "role": "attendant", "base": "GRU", "flightHours": 5400.0, "status": "vacation", "license": "CCA-29877", "medicalExpiry": "2024-12-12"}},
		{ID: "7", Fields: fields{"name": "Carlos Mendes", "role": "pilot", "base": "BSB", "flightHours": 15210.0, "status": "active", "license": "ATPL-BR-40021", "typeRatings": "B787", "medicalExpiry": "2024-10-10", "nextDuty": "AO3305"}},
		{ID: "8", Fields: fields{"name": "Fernanda Rocha", "role": "engineer", "base": "BSB", "flightHours": 6100.0, "status": "active", "license": "FE-BR-1290", "medicalExpiry": "2025-01-19"}},
	},
	"aircraft": {
		{ID: "AC001", Fields: fields{"registration": "PR-AOA", "model": "Airbus A330-200", "seats": 282.0, "status": "active", "lastCheck": "2024-02-10", "nextCheck": "2024-05-10", "maintenanceHistory": "2024-02-10 A-check; 2023-11-02 engine borescope"}},
		{ID: "AC002", Fields: fields{"registration": "PR-AOB", "model": "Boeing 787-9", "seats": 296.0, "status": "active", "lastCheck": "2024-01-22", "nextCheck": "2024-04-22", "maintenanceHistory": "2024-01-22 A-check"}},
		{ID: "AC003", Fields: fields{"registration": "PR-AOC", "model": "Airbus A320neo", "seats": 174.0, "status": "maintenance", "lastCheck": "2024-03-12", "nextCheck": "2024-03-20", "maintenanceHistory": "2024-03-12 C-check in progress; 2023-09-18 landing gear overhaul"}},
		{ID: "AC004", Fields: fields{"registration": "PR-AOD", "model": "Embraer E195-E2", "seats": 136.0, "status": "active", "lastCheck": "2024-02-28", "nextCheck": "2024-05-28", "maintenanceHistory": "2024-02-28 A-check"}},
		{ID: "AC005", Fields: fields{"registration": "PR-AOE", "model": "Airbus A320neo", "seats": 174.0, "status": "inactive", "lastCheck": "2023-12-01", "maintenanceHistory": "2023-12-01 stored, awaiting lease return"}},
	},
	"passengers": {
		{ID: "P001", Fields: fields{"name": "Beatriz Lima", "email": "beatriz.lima@example.com", "phone": "+55 11 98888-1234", "flight": "AO1024", "seat": "2A", "class": "business", "tier": "platinum", "complaints": "none"}},
		{ID: "P002", Fields: fields{"name": "Rafael Souza", "email": "rafael.souza@example.com", "phone": "+55 21 97777-4321", "flight": "AO2210", "seat": "14C", "class": "economy", "tier": "silver", "complaints": "2024-03-15 delayed baggage (open)"}},
		{ID: "P003", Fields: fields{"name": "Camila Ferreira", "email": "camila.f@example.com", "flight": "AO3305", "seat": "7D", "class": "premium", "tier": "gold", "complaints": "2024-03-15 missed connection (escalated)"}},
		{ID: "P004", Fields: fields{"name": "Thiago Martins", "email": "thiago.m@example.com", "flight": "AO1024", "seat": "31F", "class": "economy", "tier": "none"}},
		{ID: "P005", Fields: fields{"name": "Juliana Ribeiro", "email": "ju.ribeiro@example.com", "phone": "+55 61 96666-0000", "flight": "AO0450", "seat": "1A", "class": "first", "tier": "gold"}},
	},
	"employees": {
		{ID: "E001", Fields: fields{"name": "Mariana Oliveira", "email": "mariana.oliveira@airops.example", "position": "Operations Manager", "department": "operations", "hireDate": "2016-04-11", "salary": 18500.0, "manager": "-", "status": "active"}},
		{ID: "E002", Fields: fields{"name": "Gustavo Barbosa", "email": "gustavo.b@airops.example", "position": "Maintenance Technician", "department": "maintenance", "hireDate": "2019-08-01", "salary": 7400.0, "manager": "Roberto Dias", "status": "active"}},
		{ID: "E003", Fields: fields{"name": "Roberto Dias", "email": "roberto.dias@airops.example", "position": "Chief Engineer", "department": "maintenance", "hireDate": "2012-02-20", "salary": 21000.0, "manager": "Mariana Oliveira", "status": "active"}},
		{ID: "E004", Fields: fields{"name": "Patrícia Gomes", "email": "patricia.g@airops.example", "position": "Customer Service Agent", "department": "customer-service", "hireDate": "2021-06-14", "salary": 4300.0, "manager": "Mariana Oliveira", "status": "leave"}},
		{ID: "E005", Fields: fields{"name": "Eduardo Nunes", "email": "eduardo.n@airops.example", "position": "Financial Analyst", "department": "finance", "hireDate": "2018-10-03", "salary": 9800.0, "manager": "Mariana Oliveira", "status": "active"}},
		{ID: "E006", Fields: fields{"name": "Sofia Cardoso", "email": "sofia.c@airops.example", "position": "HR Business Partner", "department": "hr", "hireDate": "2020-01-07", "salary": 8900.0, "manager": "Mariana Oliveira", "status": "terminated"}},
	},
}

// Records returns a fresh copy of the built-in collection for a screen.
func Records(name string) ([]model.Record, error) {
	if _, err := Screen(name); err != nil {
		return nil, err
	}
	src := records[name]
	out := make([]model.Record, len(src))
	for i, r := range src {
		f := make(fields, len(r.Fields))
		for k, v := range r.Fields {
			f[k] = v
		}
		out[i] = model.Record{ID: r.ID, Fields: f}
	}
	return out, nil
}
