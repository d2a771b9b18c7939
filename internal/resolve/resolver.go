package resolve

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/sirupsen/logrus"
)

// Fallbacks when /etc/resolv.conf cannot be read.
var defaultFallbackIPs = []string{"8.8.8.8", "1.1.1.1"}

var (
	// ErrNXDomain means the queried name does not exist.
	ErrNXDomain = errors.New("domain does not exist")
	// ErrNoAnswer means the name exists but has no A record.
	ErrNoAnswer = errors.New("no A record found")
	// ErrTimeout means no upstream answered in time.
	ErrTimeout = errors.New("DNS query timeout")
)

// Resolver answers A-record queries against either an explicit server or the
// system's configured nameservers.
type Resolver struct {
	servers []string // host:port
	udp     *dns.Client
	tcp     *dns.Client
}

// New builds a Resolver. A non-empty server pins every query to that IP;
// otherwise the nameservers from /etc/resolv.conf are used, falling back to
// well-known public resolvers when it cannot be read.
func New(server string) (*Resolver, error) {
	var servers []string
	if server != "" {
		if net.ParseIP(server) == nil {
			return nil, fmt.Errorf("invalid DNS server IP address: %s", server)
		}
		servers = []string{net.JoinHostPort(server, "53")}
	} else {
		cc, err := dns.ClientConfigFromFile("/etc/resolv.conf")
		if err != nil {
			logrus.WithError(err).Warnf("failed to detect system DNS, falling back to %v", defaultFallbackIPs)
			for _, ip := range defaultFallbackIPs {
				servers = append(servers, net.JoinHostPort(ip, "53"))
			}
		} else {
			for _, s := range cc.Servers {
				servers = append(servers, net.JoinHostPort(s, cc.Port))
			}
		}
	}
	timeout := 5 * time.Second
	return &Resolver{
		servers: servers,
		udp:     &dns.Client{Timeout: timeout},
		tcp:     &dns.Client{Net: "tcp", Timeout: timeout},
	}, nil
}

// LookupA resolves hostname to its first A record.
func (r *Resolver) LookupA(hostname string) (string, error) {
	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(hostname), dns.TypeA)
	m.RecursionDesired = true

	var lastErr error
	for _, server := range r.servers {
		reply, _, err := r.udp.Exchange(m, server)
		if err == nil && reply.Truncated {
			// Retry truncated replies over TCP.
			reply, _, err = r.tcp.Exchange(m, server)
		}
		if err != nil {
			var nerr net.Error
			if errors.As(err, &nerr) && nerr.Timeout() {
				lastErr = ErrTimeout
			} else {
				lastErr = err
			}
			continue
		}
		return answerFromReply(reply)
	}
	if lastErr == nil {
		lastErr = ErrTimeout
	}
	return "", lastErr
}

func answerFromReply(reply *dns.Msg) (string, error) {
	switch reply.Rcode {
	case dns.RcodeSuccess:
	case dns.RcodeNameError:
		return "", ErrNXDomain
	default:
		return "", fmt.Errorf("lookup failed: %s", dns.RcodeToString[reply.Rcode])
	}
	for _, rr := range reply.Answer {
		if a, ok := rr.(*dns.A); ok {
			return a.A.String(), nil
		}
	}
	return "", ErrNoAnswer
}

// ReadHosts resolves the -i argument: a readable file yields one hostname per
// non-blank line, anything else is treated as a literal hostname.
func ReadHosts(arg string) ([]string, error) {
	data, err := readFileIfExists(arg)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return []string{arg}, nil
	}
	var hosts []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			hosts = append(hosts, line)
		}
	}
	return hosts, nil
}
