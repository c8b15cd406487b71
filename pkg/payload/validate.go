package payload

// Missing returns the names of fields whose value is nil, in the order the
// fields were encountered. An empty result means the payload is valid.
//
// This is a presence check only. Range and type correctness are the
// prediction service's responsibility.
func Missing(p Payload) []string {
	var missing []string
	for _, name := range p.names {
		if p.values[name] == nil {
			missing = append(missing, name)
		}
	}
	return missing
}
