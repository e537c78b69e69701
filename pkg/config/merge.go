package config

// mergeProviders merges built-in and user-defined provider configurations.
// User-defined providers override built-in providers with the same name.
func mergeProviders(builtin map[string]ProviderConfig, user map[string]ProviderConfig) map[string]*ProviderConfig {
	result := make(map[string]*ProviderConfig)

	// First, add built-in providers
	for name, provider := range builtin {
		providerCopy := provider
		result[name] = &providerCopy
	}

	// Then, override with user-defined providers (or add new ones)
	for name, userProvider := range user {
		providerCopy := userProvider
		result[name] = &providerCopy
	}

	return result
}

// mergeModels merges built-in and user-defined model specs.
// User-defined models override built-in models with the same name.
func mergeModels(builtin map[string]ModelSpec, user map[string]ModelSpec) map[string]*ModelSpec {
	result := make(map[string]*ModelSpec)

	for name, model := range builtin {
		modelCopy := model
		result[name] = &modelCopy
	}

	for name, userModel := range user {
		modelCopy := userModel
		result[name] = &modelCopy
	}

	return result
}

// mergeCritics merges built-in and user-defined critic rosters.
// A user-defined roster replaces the built-in roster for that specialty.
func mergeCritics(builtin map[CriticSpecialty][]string, user map[CriticSpecialty][]string) map[CriticSpecialty][]string {
	result := make(map[CriticSpecialty][]string)

	for specialty, ids := range builtin {
		idsCopy := make([]string, len(ids))
		copy(idsCopy, ids)
		result[specialty] = idsCopy
	}

	for specialty, ids := range user {
		idsCopy := make([]string, len(ids))
		copy(idsCopy, ids)
		result[specialty] = idsCopy
	}

	return result
}

// mergeConstitution merges built-in and user-defined constitutional
// documents. User docs override built-in docs with the same name; new
// docs are appended in YAML order.
func mergeConstitution(builtin []ConstitutionDoc, user []ConstitutionDoc) []ConstitutionDoc {
	byName := make(map[string]int, len(builtin))
	result := make([]ConstitutionDoc, len(builtin))
	copy(result, builtin)
	for i, doc := range result {
		byName[doc.Name] = i
	}

	for _, doc := range user {
		if i, exists := byName[doc.Name]; exists {
			result[i] = doc
			continue
		}
		byName[doc.Name] = len(result)
		result = append(result, doc)
	}

	return result
}
