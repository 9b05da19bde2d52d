package domain

import (
	"context"
	"errors"
	"fmt"
)

// CapabilityRegistry maps each capability to its on-device implementation.
// It is built once at startup; capabilities without an entry have no on-device provider.
type CapabilityRegistry struct {
	entries map[Capability]OnDeviceCapability
}

// NewCapabilityRegistry creates a registry from the given entries.
func NewCapabilityRegistry(entries map[Capability]OnDeviceCapability) CapabilityRegistry {
	copied := make(map[Capability]OnDeviceCapability, len(entries))
	for c, e := range entries {
		if e != nil {
			copied[c] = e
		}
	}
	return CapabilityRegistry{entries: copied}
}

// Lookup returns the on-device capability registered for c.
func (r CapabilityRegistry) Lookup(c Capability) (OnDeviceCapability, bool) {
	e, ok := r.entries[c]
	return e, ok
}

// Capabilities returns the registered capabilities in toolbar order.
func (r CapabilityRegistry) Capabilities() []Capability {
	out := make([]Capability, 0, len(r.entries))
	for _, c := range ToolCapabilities() {
		if _, ok := r.entries[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// EngineCapability serves one capability family from an OnDeviceEngine with fixed session options.
type EngineCapability struct {
	engine  OnDeviceEngine
	family  EngineFamily
	options SessionOptions
}

// NewEngineCapability creates an EngineCapability.
func NewEngineCapability(engine OnDeviceEngine, family EngineFamily, options SessionOptions) EngineCapability {
	return EngineCapability{engine: engine, family: family, options: options}
}

// Availability queries the engine for the capability's family.
func (c EngineCapability) Availability(ctx context.Context, req EngineRequest) (Availability, error) {
	req.Family = c.family
	a, err := c.engine.Availability(ctx, req)
	if err != nil {
		return Availability_Unavailable, NewProviderErr(ProviderErrKind_Unavailable, ProviderKind_OnDevice, "availability check failed").WithCause(err)
	}
	return a, nil
}

// Acquire opens a session according to the availability tag.
func (c EngineCapability) Acquire(ctx context.Context, req EngineRequest, availability Availability, onProgress ProgressFunc) (ProviderSession, error) {
	req.Family = c.family
	switch availability {
	case Availability_Available:
		s, err := c.engine.Create(ctx, req, c.options, nil)
		if err != nil {
			return nil, asProviderErr(err, ProviderErrKind_InvocationError, fmt.Sprintf("failed to create %s session", c.family))
		}
		return s, nil
	case Availability_Downloadable, Availability_Downloading:
		if onProgress == nil {
			onProgress = func(DownloadProgress) {}
		}
		s, err := c.engine.Create(ctx, req, c.options, onProgress)
		if err != nil {
			return nil, asProviderErr(err, ProviderErrKind_DownloadFailed, fmt.Sprintf("failed to download %s model", c.family))
		}
		return s, nil
	case Availability_Unavailable:
		return nil, NewProviderErr(ProviderErrKind_Unavailable, ProviderKind_OnDevice, fmt.Sprintf("%s engine is unavailable", c.family))
	}
	return nil, NewProviderErr(ProviderErrKind_Unavailable, ProviderKind_OnDevice, fmt.Sprintf("unknown availability status %q", availability))
}

// asProviderErr keeps provider errors as they are and wraps anything else as kind.
func asProviderErr(err error, kind ProviderErrKind, message string) error {
	var pe *ProviderErr
	if errors.As(err, &pe) {
		return err
	}
	return NewProviderErr(kind, ProviderKind_OnDevice, message).WithCause(err)
}
